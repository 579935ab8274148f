package cli

// This file contains the test command: a single supervised run of the
// bot's test suite, or a continuous loop on a fixed interval.

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hackreality/botops/supervisor"
)

func (a *App) test(ctx *cli.Context) error {
	sup := supervisor.New(a.logger, ".")

	if ctx.Bool("continuous") {
		interval := time.Duration(ctx.Int("interval")) * time.Minute
		if interval <= 0 {
			interval = supervisor.DefaultInterval
		}

		sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a.logger.Info().Msg("Press Ctrl+C to stop")
		sup.RunForever(sigCtx, interval)
		return nil
	}

	rec := sup.ExecuteOnce()
	if !rec.Success {
		return cli.Exit("", 1)
	}
	return nil
}
