package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"golang.org/x/time/rate"

	"github.com/moderation-tools/badwords/cachestore"
	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/eventlog"
	"github.com/moderation-tools/badwords/flagstore"
	"github.com/moderation-tools/badwords/mood"
	"github.com/moderation-tools/badwords/profanity"
	"github.com/moderation-tools/badwords/rules"
	"github.com/moderation-tools/badwords/setstore"
	"github.com/moderation-tools/badwords/visual"
)

type Server struct {
	logger *slog.Logger
	engine *engine.Engine
	echo   *echo.Echo
}

type Config struct {
	Logger              *slog.Logger
	RedisURL            string
	DatabaseURL         string
	WordDir             string
	Languages           []string
	SetsFileJSON        string
	ClassifierHost      string
	ClassifierToken     string
	ClassifierRateLimit int
	PreScreenHost       string
	PreScreenToken      string
	SlackWebhookURL     string
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	var counters countstore.CountStore
	var cache cachestore.CacheStore
	var flags flagstore.FlagStore
	var sets setstore.SetStore
	if config.RedisURL != "" {
		cnt, err := countstore.NewRedisCountStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis countstore: %w", err)
		}
		counters = cnt

		csh, err := cachestore.NewRedisCacheStore(config.RedisURL, 30*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("initializing redis cachestore: %w", err)
		}
		cache = csh

		flg, err := flagstore.NewRedisFlagStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis flagstore: %w", err)
		}
		flags = flg

		st, err := setstore.NewRedisSetStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis setstore: %w", err)
		}
		sets = st
	} else {
		counters = countstore.NewMemCountStore()
		cache = cachestore.NewMemCacheStore(5_000, 30*time.Minute)
		flags = flagstore.NewMemFlagStore()
		sets = setstore.NewMemSetStore()
	}

	if config.SetsFileJSON != "" {
		if err := setstore.LoadFromFileJSON(context.Background(), sets, config.SetsFileJSON); err != nil {
			return nil, fmt.Errorf("initializing setstore: %w", err)
		}
		logger.Info("loaded set config from JSON", "path", config.SetsFileJSON)
	}

	filterOpts := []profanity.Option{}
	if len(config.Languages) > 0 {
		filterOpts = append(filterOpts, profanity.WithLanguages(config.Languages...))
	}
	if config.WordDir != "" {
		filterOpts = append(filterOpts, profanity.WithWordDir(config.WordDir))
	}
	filter, err := profanity.New(filterOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading word lists: %w", err)
	}

	ruleset := rules.DefaultRules()

	var classifier *visual.Client
	if config.ClassifierHost != "" && config.ClassifierToken != "" {
		logger.Info("configuring image classification client", "host", config.ClassifierHost)
		cl := visual.NewClient(config.ClassifierHost, config.ClassifierToken)
		if config.ClassifierRateLimit > 0 {
			cl.Limiter = rate.NewLimiter(rate.Limit(config.ClassifierRateLimit), 1)
		}
		if config.PreScreenHost != "" && config.PreScreenToken != "" {
			logger.Info("configuring image prescreen client", "host", config.PreScreenHost)
			cl.PreScreenClient = visual.NewPreScreenClient(config.PreScreenHost, config.PreScreenToken)
		}
		classifier = &cl
	}

	var decisions *eventlog.Store
	if config.DatabaseURL != "" {
		decisions, err = eventlog.OpenStore(config.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening decision log: %w", err)
		}
	}

	eng := engine.Engine{
		Logger:          logger,
		Rules:           ruleset,
		Counters:        counters,
		Sets:            sets,
		Cache:           cache,
		Flags:           flags,
		Profanity:       filter,
		Mood:            mood.NewAnalyzer(),
		Classifier:      classifier,
		Decisions:       decisions,
		SlackWebhookURL: config.SlackWebhookURL,
	}

	s := &Server{
		logger: logger,
		engine: &eng,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("16M"))

	e.GET("/health", s.handleHealthCheck)
	e.POST("/check", s.handleCheck)
	e.POST("/censor", s.handleCensor)
	e.POST("/mood", s.handleMood)
	e.POST("/image", s.handleImage)
	e.GET("/decisions/:subject", s.handleDecisions)
	s.echo = e

	return s, nil
}

// RunAPI starts the HTTP API and blocks until an OS exit signal, then
// shuts down gracefully.
func (s *Server) RunAPI(listen string) error {
	s.logger.Info("starting HTTP API", "bind", listen)
	go func() {
		if err := s.echo.Start(listen); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-exitSignals
	s.logger.Info("received OS exit signal", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	s.logger.Info("graceful shutdown complete")
	return nil
}

func (s *Server) RunMetrics(listen string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, nil)
}
