package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/chipbook/chipbook/internal/analysis"
	"github.com/chipbook/chipbook/internal/config"
	"github.com/chipbook/chipbook/internal/session"
	"github.com/chipbook/chipbook/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type cli struct {
	Config  string           `kong:"default='chipbook.hcl',help='Path to HCL config file'"`
	Server  string           `kong:"help='Analysis endpoint URL (overrides config)'"`
	Debug   bool             `kong:"help='Enable debug logging'"`
	Version kong.VersionFlag `short:"v" help:"Show version"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("chipbook"),
		kong.Description("Terminal client for the chipbook poker ledger"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(run(c))
}

func run(c cli) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Server != "" {
		cfg.Server.AnalysisURL = c.Server
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	scope := session.NewScope(
		quartz.NewReal(),
		time.Duration(cfg.UI.RevealSeconds)*time.Second,
		logger,
	)
	defer scope.Close()

	client := analysis.NewClient(
		cfg.Server.AnalysisURL,
		time.Duration(cfg.Server.RequestTimeout)*time.Second,
		logger,
	)

	model := tui.New(scope, client, cfg.UI.Celebrations, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		defer stop()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})
	return g.Wait()
}
