package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	cli "github.com/urfave/cli/v2"

	"github.com/moderation-tools/badwords/keyword"
	"github.com/moderation-tools/badwords/mood"
	"github.com/moderation-tools/badwords/profanity"
)

func main() {
	app := cli.App{
		Name:    "badwords",
		Usage:   "informal debugging CLI tool for text moderation",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "language",
			Aliases: []string{"l"},
			Usage:   "word-list language codes to load",
			Value:   cli.NewStringSlice("en"),
		},
		&cli.StringFlag{
			Name:  "word-dir",
			Usage: "directory containing .bdw word lists (instead of embedded lists)",
		},
		&cli.Float64Flag{
			Name:  "threshold",
			Usage: "similarity ratio for fuzzy matching (0 disables)",
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "tokenize",
			Usage:  "reads lines of text from stdin, outputs normalized tokens",
			Action: runTokenize,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "keep-masks",
					Usage: "do not split tokens on mask characters (#, *, _, -)",
				},
			},
		},
		&cli.Command{
			Name:   "check",
			Usage:  "reads lines of text from stdin, outputs word-list matches",
			Action: runCheck,
		},
		&cli.Command{
			Name:   "censor",
			Usage:  "reads lines of text from stdin, outputs lines with matches masked",
			Action: runCensor,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "mask",
					Usage: "character to mask matched words with",
					Value: "*",
				},
			},
		},
		&cli.Command{
			Name:   "mood",
			Usage:  "reads lines of text from stdin, outputs mood label and score",
			Action: runMood,
		},
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(-1)
	}
}

func newFilter(cctx *cli.Context) (*profanity.Filter, error) {
	opts := []profanity.Option{
		profanity.WithLanguages(cctx.StringSlice("language")...),
	}
	if dir := cctx.String("word-dir"); dir != "" {
		opts = append(opts, profanity.WithWordDir(dir))
	}
	return profanity.New(opts...)
}

func runTokenize(cctx *cli.Context) error {
	tokenize := keyword.TokenizeText
	if cctx.Bool("keep-masks") {
		tokenize = keyword.TokenizeTextKeepingMasks
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Println(strings.Join(tokenize(line), " "))
	}
	return scanner.Err()
}

func runCheck(cctx *cli.Context) error {
	filter, err := newFilter(cctx)
	if err != nil {
		return err
	}
	threshold := cctx.Float64("threshold")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		for _, m := range filter.Match(line, threshold) {
			fmt.Printf("MATCH\t%s\t%s\n", m.Word, line)
		}
	}
	return scanner.Err()
}

func runCensor(cctx *cli.Context) error {
	filter, err := newFilter(cctx)
	if err != nil {
		return err
	}
	mask := []rune(cctx.String("mask"))
	var maskRune rune
	if len(mask) > 0 {
		maskRune = mask[0]
	}
	threshold := cctx.Float64("threshold")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Println(filter.CensorFuzzy(line, maskRune, threshold))
	}
	return scanner.Err()
}

func runMood(cctx *cli.Context) error {
	analyzer := mood.NewAnalyzer()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		res := analyzer.Analyze(line)
		fmt.Printf("%s\t%+.3f\t%s\n", res.Label, res.Score, line)
	}
	return scanner.Err()
}
