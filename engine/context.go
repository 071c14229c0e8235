package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/moderation-tools/badwords/mood"
	"github.com/moderation-tools/badwords/profanity"
	"github.com/moderation-tools/badwords/visual"
)

// The primary interface exposed to rules. All other contexts derive from
// this "base" struct.
type BaseContext struct {
	// actual golang "context.Context", if needed for timeouts etc
	Ctx context.Context
	// any errors encountered while processing methods on this struct (or
	// sub-types) get rolled up in this nullable field. Only the first
	// error is kept; write via recordErr, image rules share one context
	// across goroutines.
	Err     error
	errLock sync.Mutex
	// slog logger handle, with event-specific structured fields
	// pre-populated. Pointer, but expected to never be nil.
	Logger *slog.Logger

	engine  *Engine
	effects *Effects
}

type MessageContext struct {
	BaseContext

	Message MessageEvent
}

type ImageContext struct {
	BaseContext

	Image ImageEvent
}

func NewMessageContext(ctx context.Context, eng *Engine, evt MessageEvent) MessageContext {
	return MessageContext{
		BaseContext: BaseContext{
			Ctx:     ctx,
			Logger:  eng.Logger.With("author", evt.Author.ID, "content", evt.ID),
			engine:  eng,
			effects: &Effects{},
		},
		Message: evt,
	}
}

func NewImageContext(ctx context.Context, eng *Engine, evt ImageEvent) ImageContext {
	return ImageContext{
		BaseContext: BaseContext{
			Ctx:     ctx,
			Logger:  eng.Logger.With("author", evt.Author.ID, "content", evt.ID),
			engine:  eng,
			effects: &Effects{},
		},
		Image: evt,
	}
}

func (c *BaseContext) recordErr(err error) {
	c.errLock.Lock()
	defer c.errLock.Unlock()
	if nil == c.Err {
		c.Err = err
	}
}

// request external state via engine (indirect) ======

func (c *BaseContext) GetCount(name, val, period string) int {
	out, err := c.engine.Counters.GetCount(c.Ctx, name, val, period)
	if err != nil {
		c.recordErr(err)
		return 0
	}
	return out
}

func (c *BaseContext) GetCountDistinct(name, bucket, period string) int {
	out, err := c.engine.Counters.GetCountDistinct(c.Ctx, name, bucket, period)
	if err != nil {
		c.recordErr(err)
		return 0
	}
	return out
}

func (c *BaseContext) InSet(name, val string) bool {
	out, err := c.engine.Sets.InSet(c.Ctx, name, val)
	if err != nil {
		c.recordErr(err)
		return false
	}
	return out
}

// Access to the engine's profanity filter (without access to other engine fields)
func (c *BaseContext) Profanity() *profanity.Filter {
	return c.engine.Profanity
}

// Access to the engine's mood analyzer (without access to other engine fields)
func (c *BaseContext) MoodAnalyzer() *mood.Analyzer {
	return c.engine.Mood
}

// Access to the engine's image classification client; may be nil
func (c *BaseContext) Classifier() *visual.Client {
	return c.engine.Classifier
}

// CacheGet / CacheSet expose the engine's verdict cache to rules.
func (c *BaseContext) CacheGet(name, key string) string {
	out, err := c.engine.Cache.Get(c.Ctx, name, key)
	if err != nil {
		c.recordErr(err)
		return ""
	}
	return out
}

func (c *BaseContext) CacheSet(name, key, val string) {
	if err := c.engine.Cache.Set(c.Ctx, name, key, val); err != nil {
		c.recordErr(err)
	}
}

// Returns a pointer to the underlying engine. This usually should NOT be
// used in rules; it is an escape hatch for hacking on the system. The
// Engine API is not stable.
func (c *BaseContext) InternalEngine() *Engine {
	return c.engine
}

// update effects (indirect) ======

func (c *BaseContext) Increment(name, val string) {
	c.effects.Increment(name, val)
}

func (c *BaseContext) IncrementDistinct(name, bucket, val string) {
	c.effects.IncrementDistinct(name, bucket, val)
}

func (c *BaseContext) AddLabel(val string) {
	c.effects.AddLabel(val)
}

func (c *BaseContext) AddFlag(val string) {
	c.effects.AddFlag(val)
}

func (c *BaseContext) Report(reason, comment string) {
	c.effects.Report(reason, comment)
}

func (c *BaseContext) TakedownContent() {
	c.effects.TakedownContent()
}

// single log line summarizing every action taken as a result of the event
func (c *BaseContext) CanonicalLogLine() {
	c.Logger.Info("canonical-event-results",
		"labels", c.effects.Labels,
		"flags", c.effects.Flags,
		"reports", len(c.effects.Reports),
		"takedown", c.effects.Takedown,
	)
}
