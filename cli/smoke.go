package cli

// This file contains the smoke command for running the minimal
// smoke-test bot.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hackreality/botops/smokebot"
)

func (a *App) smoke(ctx *cli.Context) error {
	token := os.Getenv(a.cfg.Smoke.TokenEnv)

	bot, err := smokebot.New(a.logger, token)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to create smoke-test bot")
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		bot.Stop()
	}()

	bot.Start()
	return nil
}
