package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adoptly/shelter/internal/config"
	"github.com/adoptly/shelter/internal/otel"
	"github.com/adoptly/shelter/internal/web"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pet directory over HTTP",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: $SHELTER_HTTP_ADDR or :8080)")

	RootCmd.AddCommand(cmd)
}

// serveEnv holds environment-driven serve settings. Flags take precedence.
type serveEnv struct {
	HTTPAddr  string `env:"SHELTER_HTTP_ADDR" envDefault:":8080"`
	LogFormat string `env:"SHELTER_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"SHELTER_LOG_LEVEL" envDefault:"info"`
}

func runServe(cmd *cobra.Command, args []string) {
	var envCfg serveEnv
	if err := config.ParseEnv(&envCfg); err != nil {
		exitErr("load config", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = envCfg.HTTPAddr
	}

	logger := newLogger(envCfg.LogFormat, envCfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "shelter")
	if err != nil {
		exitErr("setup tracing", err)
	}
	defer shutdownTracing(context.Background())

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer st.Close()

	srv, err := web.NewServer(web.Config{
		HTTPAddr: addr,
		Store:    st,
		Logger:   logger,
	})
	if err != nil {
		exitErr("create server", err)
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		exitErr("serve", err)
	}
}

func newLogger(format, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
