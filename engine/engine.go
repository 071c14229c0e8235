// Package engine is the runtime for executing moderation rules over
// submitted content, managing state, and recording moderation actions.
//
// Text and image events are dispatched through a configurable RuleSet;
// rules accumulate side-effects (labels, flags, reports, takedowns) which
// are deduplicated, quota-limited, and then persisted at the end of event
// processing.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moderation-tools/badwords/cachestore"
	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/eventlog"
	"github.com/moderation-tools/badwords/flagstore"
	"github.com/moderation-tools/badwords/mood"
	"github.com/moderation-tools/badwords/profanity"
	"github.com/moderation-tools/badwords/setstore"
	"github.com/moderation-tools/badwords/visual"
)

// The author of submitted content.
type Author struct {
	// stable identifier within the calling platform
	ID string
	// display name or handle, if known
	Handle string
	// when the account was created, if known
	CreatedAt *time.Time
}

// A single text submission (chat message, comment, post body).
type MessageEvent struct {
	Author Author
	// identifier of the content itself
	ID   string
	Text string
}

// A single image submission.
type ImageEvent struct {
	Author   Author
	ID       string
	MimeType string
	Bytes    []byte
}

// Engine holds the rules plus all the state and clients that rules and
// effect persistence need. Several fields should not be nil even though
// they are interface or pointer types: Logger, Counters, Sets, Cache, and
// Flags are expected on every engine.
type Engine struct {
	Logger *slog.Logger
	Rules  RuleSet

	Counters countstore.CountStore
	Sets     setstore.SetStore
	Cache    cachestore.CacheStore
	Flags    flagstore.FlagStore

	Profanity *profanity.Filter
	Mood      *mood.Analyzer

	// optional image classification client
	Classifier *visual.Client

	// optional decision log (nil disables)
	Decisions *eventlog.Store

	// optional "incoming webhook" notifications (empty disables)
	SlackWebhookURL string
}

// ProcessMessage runs all message rules over a text event and persists any
// resulting effects.
func (eng *Engine) ProcessMessage(ctx context.Context, evt MessageEvent) error {
	// similar to an HTTP server, we want to recover any panics from rule execution
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("message rule execution exception", "err", r, "author", evt.Author.ID, "content", evt.ID)
			eventErrorCount.WithLabelValues("message").Inc()
		}
	}()
	start := time.Now()
	defer func() {
		eventProcessDuration.WithLabelValues("message").Observe(time.Since(start).Seconds())
	}()
	eventProcessCount.WithLabelValues("message").Inc()

	c := NewMessageContext(ctx, eng, evt)
	eng.Logger.Debug("processing message", "author", evt.Author.ID, "content", evt.ID)
	if err := eng.Rules.CallMessageRules(&c); err != nil {
		eventErrorCount.WithLabelValues("message").Inc()
		return err
	}
	if c.Err != nil {
		eventErrorCount.WithLabelValues("message").Inc()
		return c.Err
	}
	c.CanonicalLogLine()
	if err := eng.persistEffects(&c.BaseContext, evt.Author, evt.ID); err != nil {
		return err
	}
	return eng.persistCounters(ctx, c.effects)
}

// ProcessImage runs all image rules over an image event and persists any
// resulting effects.
func (eng *Engine) ProcessImage(ctx context.Context, evt ImageEvent) error {
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("image rule execution exception", "err", r, "author", evt.Author.ID, "content", evt.ID)
			eventErrorCount.WithLabelValues("image").Inc()
		}
	}()
	start := time.Now()
	defer func() {
		eventProcessDuration.WithLabelValues("image").Observe(time.Since(start).Seconds())
	}()
	eventProcessCount.WithLabelValues("image").Inc()

	c := NewImageContext(ctx, eng, evt)
	eng.Logger.Debug("processing image", "author", evt.Author.ID, "content", evt.ID, "mimetype", evt.MimeType)
	if err := eng.Rules.CallImageRules(&c); err != nil {
		eventErrorCount.WithLabelValues("image").Inc()
		return err
	}
	if c.Err != nil {
		eventErrorCount.WithLabelValues("image").Inc()
		return c.Err
	}
	c.CanonicalLogLine()
	if err := eng.persistEffects(&c.BaseContext, evt.Author, evt.ID); err != nil {
		return err
	}
	return eng.persistCounters(ctx, c.effects)
}

func (eng *Engine) GetCount(ctx context.Context, name, val, period string) (int, error) {
	return eng.Counters.GetCount(ctx, name, val, period)
}

// checks if `val` is an element of set `name`
func (eng *Engine) InSet(ctx context.Context, name, val string) (bool, error) {
	return eng.Sets.InSet(ctx, name, val)
}

// PurgeSubjectCache drops any cached verdicts for a subject.
func (eng *Engine) PurgeSubjectCache(ctx context.Context, subject string) error {
	if err := eng.Cache.Purge(ctx, "verdict", subject); err != nil {
		return fmt.Errorf("purging subject cache: %w", err)
	}
	return nil
}
