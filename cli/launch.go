package cli

// This file contains the launch command for starting the bot process.

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hackreality/botops/launcher"
)

func (a *App) launch(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := launcher.New(a.logger, a.cfg.Launch.Dir, a.cfg.Launch.Command)
	return l.Run(sigCtx)
}
