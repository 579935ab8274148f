package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hackreality/botops/config"
)

const AppName = "botops"

// LogFile receives a copy of all log output, rotated by size.
const LogFile = "test_runner.log"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
	cfg    *config.Config
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339Nano,
	}
	rotating := &lumberjack.Logger{
		Filename:   LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotating)).
		With().Timestamp().Logger()

	app := &App{
		logger: logger,
		cfg:    config.Default(),
		cli: &cli.App{
			Name:  AppName,
			Usage: "Operational tooling for the HackReality Telegram bots",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
				&cli.StringFlag{
					Name:  "config",
					Usage: "Path to a YAML config file (built-in defaults if omitted)",
				},
			},
		},
	}
	app.cli.Before = func(ctx *cli.Context) error {
		if ctx.Bool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		if path := ctx.String("config"); path != "" {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			app.cfg = cfg
		}
		return nil
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "test",
		Usage:  "Run the bot test suite once, or continuously on an interval",
		Action: app.test,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "continuous",
				Usage: "Keep running the suite on a fixed interval until interrupted",
			},
			&cli.IntFlag{
				Name:  "interval",
				Usage: "Minutes between continuous runs",
				Value: 30,
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "status",
		Usage:  "Show the result of the most recent test run",
		Action: app.status,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "deploy",
		Usage:  "Check CI and hosting status for the deployed bots",
		Action: app.deploy,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "launch",
		Usage:  "Start the bot process and supervise it until it exits",
		Action: app.launch,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "smoke",
		Usage:  "Run the minimal smoke-test bot until interrupted",
		Action: app.smoke,
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" && len(commit) >= 8 {
		a.cli.Version = version + " (commit: " + commit[:8] + ", built: " + date + ")"
	}
}
