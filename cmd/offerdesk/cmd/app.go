package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/config"
	"github.com/wexinc/offerdesk/internal/logging"
	"github.com/wexinc/offerdesk/internal/session"
)

// app holds what every command needs: configuration, the logger, the API
// client and the stored session.
type app struct {
	cfg     *config.Config
	logger  *logging.Logger
	client  *api.Client
	session *session.Session
}

// newApp loads configuration, starts file logging and restores the session.
// Callers must call close when done.
func newApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logging.LevelDebug
	}
	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.LogDir(),
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     false, // the TUI owns the terminal; CLI output goes to stdout
		JSONFormat:  cfg.Log.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	}
	logger := logging.Global()
	logger.Debug("offerdesk starting", "version", Version, "command", cmd.CommandPath(), "base_url", cfg.API.BaseURL)

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = logging.CloseGlobal()
		return nil, err
	}

	sess, err := session.Open(session.NewFileStore(cfg.SessionPath()), client, logger)
	if err != nil {
		_ = logging.CloseGlobal()
		return nil, err
	}
	client.SetTokenSource(sess)

	return &app{cfg: cfg, logger: logger, client: client, session: sess}, nil
}

// close flushes and closes the log file.
func (a *app) close() {
	_ = logging.CloseGlobal()
}

// requireSession fails with a hint to log in when there is no usable session.
func (a *app) requireSession() error {
	return a.session.Require()
}
