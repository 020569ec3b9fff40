package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/monbon24/launcher/internal/config"
	"github.com/monbon24/launcher/internal/database"
	"github.com/monbon24/launcher/internal/models"
	"github.com/monbon24/launcher/internal/preview"
	"github.com/monbon24/launcher/internal/status"
	"github.com/monbon24/launcher/server"
	"github.com/monbon24/launcher/web"
)

var (
	version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "launcher",
		Short:        "Personal app launcher",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the launcher page",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Validate the launcher configuration",
			Args:  cobra.NoArgs,
			RunE:  runCheck,
		},
		&cobra.Command{
			Use:   "tiles",
			Short: "Preview the launcher in the terminal",
			Args:  cobra.NoArgs,
			RunE:  runTiles,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), server.FormatBuildVersion(version))
			},
		},
	)

	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()})))
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (database.Database, error) {
	if cfg.Database.URL == "" {
		return database.NewStatic(cfg), nil
	}
	db, err := database.NewDatabase(ctx, cfg.Database.URL, cfg.Server.CacheTTL, cfg.StrictAccents)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func statusProvider(cfg *config.Config) status.Provider {
	if cfg.Status.ProbeURL == "" {
		return status.Static(cfg.Status.Status)
	}
	return status.NewProbe(cfg.Status.ProbeURL, cfg.Status.Text, cfg.Status.ProbeTimeout, cfg.Status.ProbeInterval)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	srv := server.NewServer(version, cfg, web.Assets(), tmpl.ExecuteTemplate, db, statusProvider(cfg))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	slog.Info("Started server",
		slog.String("listen_addr", ":"+cfg.Server.Port),
		slog.String("source", sourceName(cfg)))

	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)

	if err := awaitShutdown(si, errCh, db); err != nil {
		return err
	}

	slog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

func sourceName(cfg *config.Config) string {
	if cfg.Database.URL != "" {
		return "postgres"
	}
	return "config"
}

// awaitShutdown blocks until a terminating signal or a server error. SIGHUP
// drops the source's cached descriptors and keeps serving.
func awaitShutdown(si <-chan os.Signal, errCh <-chan error, db database.Database) error {
	for {
		select {
		case err := <-errCh:
			return fmt.Errorf("server stopped: %w", err)
		case sig := <-si:
			if sig != syscall.SIGHUP {
				return nil
			}
			slog.Info("Reloading launcher descriptors")
			db.Invalidate()
		}
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "configuration OK: %d tiles, hub %q\n", len(cfg.Tiles), cfg.Hub.Title)
	for _, t := range cfg.Tiles {
		accent, ok := models.ParseAccent(string(t.Accent))
		note := ""
		if !ok && t.Accent != "" {
			note = fmt.Sprintf(" (unknown accent %q)", t.Accent)
		}
		fmt.Fprintf(out, "  %-24s %-9s external=%-5t %s%s\n", t.Title, accent, t.External, t.Href, note)
	}
	return nil
}

func runTiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	profile, err := db.GetProfile(ctx)
	if err != nil {
		return err
	}
	tiles, err := db.GetTiles(ctx)
	if err != nil {
		return err
	}
	hub, err := db.GetHub(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), preview.Page(models.IndexPageData{
		Meta:    cfg.Meta,
		Profile: profile,
		Tiles:   tiles,
		Hub:     hub,
		Status:  statusProvider(cfg).Status(ctx),
	}))
	return nil
}
