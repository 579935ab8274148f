package smokebot

// Minimal smoke-test bot: a single /start handler to verify the token
// and long-polling path work end to end.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"
)

type Bot struct {
	api    *tele.Bot
	logger zerolog.Logger
}

func New(logger zerolog.Logger, token string) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("no bot token found")
	}

	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	b := &Bot{api: api, logger: logger}
	b.api.Handle("/start", b.handleStart)
	return b, nil
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send("Hello! Test bot is working!")
}

// Start begins long polling and blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info().Str("username", b.api.Me.Username).Msg("Starting test bot")
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}
