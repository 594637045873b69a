package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/browser"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/pdf"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/storage"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/templates"
	"github.com/sahilbrid/nyaay-saathi/internal/app"
	"github.com/sahilbrid/nyaay-saathi/internal/app/export"
	"github.com/sahilbrid/nyaay-saathi/internal/app/session"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/catalog"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/httpclient"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const defaultProfile = "local"

// cli holds the flags and the pipeline shared by all subcommands. Tests set
// svc before Execute so setup is skipped.
type cli struct {
	profile   string
	configDir string
	logLevel  string

	svc      ports.DocumentService
	prompter prompter
	outDir   string
	logger   *slog.Logger
	closers  []io.Closer
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "docgen",
		Short:         "Generate legal documents from category forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context())
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&c.profile, "profile", profile, "config profile (local, dev, qa, prod)")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "configs", "directory holding the config YAML files")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newCategoriesCmd(c),
		newLayoutCmd(c),
		newFillCmd(c),
		newRenderCmd(c),
		newBatchCmd(c),
	)
	return root
}

// setup loads configuration and wires the same pipeline the server uses,
// backed by an in-memory snapshot store.
func (c *cli) setup(ctx context.Context) error {
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.svc != nil {
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(c.profile, config.WithConfigDir(c.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level := cfg.Log.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	c.logger = logging.New(level, "text", os.Stderr)
	if c.outDir == "" {
		c.outDir = cfg.Export.OutputDir
	}

	cat, err := catalog.Load(category.Default())
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	renderer, err := templates.New(cat,
		templates.WithLogger(c.logger),
		templates.WithPageWidth(cfg.Export.PageWidthPx),
	)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	client := httpclient.New(&cfg.Client, "chrome-devtools", nil, c.logger)
	chrome := browser.New(cfg.Browser, client, c.logger)
	c.closers = append(c.closers, chrome)

	exporter := export.New(chrome, pdf.NewAssembler(), chrome,
		export.Options{PageWidthPx: cfg.Export.PageWidthPx, ScaleFactor: cfg.Export.ScaleFactor},
		c.logger, nil)

	c.svc = app.NewDocumentService(cat, session.NewManager(storage.NewMemory(), c.logger), renderer, exporter, c.logger)

	c.logger.DebugContext(ctx, "pipeline ready", slog.String("profile", c.profile))
	return nil
}

// close releases the browser. It runs after Execute whether or not the
// command failed.
func (c *cli) close() error {
	var errs []error
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}
