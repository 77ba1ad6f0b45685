package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"people/internal/audit"
	auditstore "people/internal/audit/store"
	"people/internal/cli"
	"people/internal/people/metrics"
	"people/internal/people/service"
	"people/internal/platform/config"
	"people/internal/platform/logger"
	"people/internal/seed"
)

// main wires the in-memory registry, seeds it, and hands the arguments to the
// command tree. With no arguments it starts the interactive shell.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.FromEnv(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorLine(err))
		return 1
	}
	log := logger.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	publisher := audit.NewPublisher(auditstore.NewInMemoryStore())
	svc := service.NewInMemory(
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(metrics.New(reg)),
	)

	if cfg.Seed {
		if err := loadSeed(ctx, svc, cfg, log); err != nil {
			fmt.Fprintln(os.Stderr, cli.ErrorLine(err))
			return cli.ExitCode(err)
		}
	}

	app := cli.New(svc,
		cli.WithAuditLog(publisher),
		cli.WithGatherer(reg),
		cli.WithLogger(log),
		cli.WithPrompt(cfg.Prompt),
	)
	if len(args) == 0 {
		args = []string{"shell"}
	}
	if err := app.Execute(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorLine(err))
		return cli.ExitCode(err)
	}
	return 0
}

func loadSeed(ctx context.Context, svc *service.Service, cfg config.Config, log *slog.Logger) error {
	var (
		fx  *seed.Fixture
		err error
	)
	if cfg.SeedFile != "" {
		fx, err = seed.LoadFixture(cfg.SeedFile)
	} else {
		fx, err = seed.DefaultFixture()
	}
	if err != nil {
		return err
	}
	res, err := seed.Load(ctx, svc, fx, cfg.SeedWorkers)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "seed data loaded",
		"people", res.People,
		"addresses", res.Addresses,
		"employments", res.Employments,
		"relationships", res.Relationships,
	)
	return nil
}
