// Package cli wires the moneydungeon command tree.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/money-dungeon-web/internal/config"
	"github.com/preston-bernstein/money-dungeon-web/internal/logging"
	"github.com/preston-bernstein/money-dungeon-web/internal/server"
)

const serviceName = "money-dungeon-web"

// Options are the seams the commands call out to.
type Options struct {
	Version    string
	LoadConfig func() (config.Config, error)
	Serve      func(ctx context.Context, cfg config.Config, logger *slog.Logger) error
	Now        func() time.Time
	LogOutput  io.Writer
}

func (o *Options) defaults() {
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.Serve == nil {
		o.Serve = runServer
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type app struct {
	opts   Options
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. Running it without a subcommand serves.
func NewRootCommand(opts Options) *cobra.Command {
	opts.defaults()
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "moneydungeon",
		Short:         "Money Dungeon landing page server",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.AddCommand(a.serveCommand(), a.exportCommand())
	return root
}

func (a *app) initialize() error {
	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: a.opts.Version,
		Output:  a.opts.LogOutput,
	})
	return nil
}

func (a *app) serveCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.opts.Serve(ctx, a.cfg, a.logger)
}

func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
	return nil
}
