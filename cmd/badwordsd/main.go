package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "badwordsd",
		Usage:   "content moderation daemon",
		Version: versioninfo.Short(),
	}

	app.Commands = []*cli.Command{
		runCmd,
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for HTTP APIs",
			Value:   ":3999",
			EnvVars: []string{"BADWORDS_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":3998",
			EnvVars: []string{"BADWORDS_METRICS_LISTEN"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL for state stores (blank for in-memory)",
			EnvVars: []string{"BADWORDS_REDIS_URL"},
		},
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "database for the moderation decision log (blank disables)",
			Value:   "sqlite://data/badwordsd/decisions.db",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:    "word-dir",
			Usage:   "directory containing .bdw word lists (instead of embedded lists)",
			EnvVars: []string{"BADWORDS_WORD_DIR"},
		},
		&cli.StringSliceFlag{
			Name:    "language",
			Usage:   "word-list language codes to load",
			Value:   cli.NewStringSlice("en"),
			EnvVars: []string{"BADWORDS_LANGUAGES"},
		},
		&cli.StringFlag{
			Name:    "sets-json",
			Usage:   "path to JSON file containing word sets to load at startup",
			EnvVars: []string{"BADWORDS_SETS_JSON"},
		},
		&cli.StringFlag{
			Name:    "classifier-host",
			Usage:   "method, hostname, and port of image classification service",
			EnvVars: []string{"BADWORDS_CLASSIFIER_HOST"},
		},
		&cli.StringFlag{
			Name:    "classifier-token",
			Usage:   "API token for image classification service",
			EnvVars: []string{"BADWORDS_CLASSIFIER_TOKEN"},
		},
		&cli.IntFlag{
			Name:    "classifier-rate-limit",
			Usage:   "max classification requests per second to upstream",
			Value:   8,
			EnvVars: []string{"BADWORDS_CLASSIFIER_RATE_LIMIT"},
		},
		&cli.StringFlag{
			Name:    "prescreen-host",
			Usage:   "method, hostname, and port of sfw/nsfw prescreen service",
			EnvVars: []string{"BADWORDS_PRESCREEN_HOST"},
		},
		&cli.StringFlag{
			Name:    "prescreen-token",
			Usage:   "auth token for prescreen service",
			EnvVars: []string{"BADWORDS_PRESCREEN_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "slack-webhook-url",
			Usage:   "webhook URL for moderation action notifications",
			EnvVars: []string{"SLACK_WEBHOOK_URL"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		srv, err := NewServer(Config{
			Logger:              logger,
			RedisURL:            cctx.String("redis-url"),
			DatabaseURL:         cctx.String("database-url"),
			WordDir:             cctx.String("word-dir"),
			Languages:           cctx.StringSlice("language"),
			SetsFileJSON:        cctx.String("sets-json"),
			ClassifierHost:      cctx.String("classifier-host"),
			ClassifierToken:     cctx.String("classifier-token"),
			ClassifierRateLimit: cctx.Int("classifier-rate-limit"),
			PreScreenHost:       cctx.String("prescreen-host"),
			PreScreenToken:      cctx.String("prescreen-token"),
			SlackWebhookURL:     cctx.String("slack-webhook-url"),
		})
		if err != nil {
			return err
		}

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				panic(fmt.Errorf("failed to start metrics endpoint: %w", err))
			}
		}()

		if err := srv.RunAPI(cctx.String("bind")); err != nil {
			return fmt.Errorf("failed to run moderation service: %w", err)
		}
		return nil
	},
}
