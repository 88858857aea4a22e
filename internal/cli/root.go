// Package cli implements the shelter CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adoptly/shelter/internal/store"
	"github.com/spf13/cobra"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "shelter",
	Short: "Pet shelter directory",
	Long:  "A small pet shelter directory. SQLite-backed, single binary, HTML over HTTP.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $SHELTER_DB or ~/.shelter/shelter.db)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("SHELTER_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shelter", "shelter.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
