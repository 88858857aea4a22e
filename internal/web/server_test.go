package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func TestNewServerRequiresAddr(t *testing.T) {
	_, err := NewServer(Config{Store: newSeededStore(t)})
	if err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestNewServerRequiresStore(t *testing.T) {
	_, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestServerServesAndShutsDown(t *testing.T) {
	srv, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		Store:    newSeededStore(t),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
