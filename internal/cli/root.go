// Package cli implements the xpensify command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/config"
	"github.com/SharmiliRS/money-manager-frontend/internal/log"
	"github.com/SharmiliRS/money-manager-frontend/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "xpensify",
	Short: "Expense and income tracker front end",
	Long: `Xpensify is a local front end for the money manager backend.
It serves a JSON gateway for the UI and offers session management and
CSV export from the command line.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *log.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return log.New(log.Config{Level: level, Component: log.ComponentCLI})
}

// loadConfig reads and validates configuration, failing fast on
// problems so they surface before any network call.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sessionStore(cfg *config.Config) (*session.Store, error) {
	path := cfg.SessionFile
	if path == "" {
		def, err := session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving session path: %w", err)
		}
		path = def
	}
	return session.NewStore(path), nil
}

func newClient(cfg *config.Config, logger *log.Logger) *api.Client {
	return api.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)
}

// requireSession loads the saved session or explains how to create one.
func requireSession(store *session.Store) (session.Session, error) {
	sess, err := store.Load()
	if err != nil {
		return session.Session{}, fmt.Errorf("not logged in (run 'xpensify login'): %w", err)
	}
	return sess, nil
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}
