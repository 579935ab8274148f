package launcher

// This file contains the bot process launcher. The bot runs as a child
// process with a short grace window: an exit inside the window is
// classified by exit code, survival past it means the bot is up and the
// launcher supervises it until exit or operator interrupt.

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog"
)

const startupGrace = 5 * time.Second

type Launcher struct {
	logger  zerolog.Logger
	dir     string
	command []string
	grace   time.Duration
}

func New(logger zerolog.Logger, dir string, command []string) *Launcher {
	return &Launcher{
		logger:  logger,
		dir:     dir,
		command: command,
		grace:   startupGrace,
	}
}

// Run starts the bot and blocks until it exits or ctx is cancelled. On
// cancellation the child gets SIGTERM and Run waits for it to stop.
func (l *Launcher) Run(ctx context.Context) error {
	l.logger.Info().
		Str("dir", l.dir).
		Str("command", shellescape.QuoteCommand(l.command)).
		Msg("Launching bot")

	cmd := exec.Command(l.command[0], l.command[1:]...)
	cmd.Dir = l.dir
	cmd.Env = append(os.Environ(), "PYTHONPATH="+l.dir)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting bot: %w", err)
	}
	l.logger.Info().Int("pid", cmd.Process.Pid).Msg("Bot process started")

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		// Exited inside the grace window: classify by exit code.
		if err != nil {
			if stderrBuf.Len() > 0 {
				l.logger.Error().Str("stderr", stderrBuf.String()).Msg("Bot error output")
			}
			return fmt.Errorf("bot failed to start: %w", err)
		}
		l.logger.Info().Msg("Bot started and exited cleanly")
		return nil
	case <-time.After(l.grace):
	}

	l.logger.Info().Msg("Bot appears to be running and ready to receive messages")

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("bot exited: %w", err)
		}
		return nil
	case <-ctx.Done():
		l.logger.Info().Msg("Stopping bot")
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
			cmd.Process.Kill()
		}
		<-done
		l.logger.Info().Msg("Bot stopped")
		return nil
	}
}
