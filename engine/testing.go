package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/moderation-tools/badwords/cachestore"
	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/flagstore"
	"github.com/moderation-tools/badwords/mood"
	"github.com/moderation-tools/badwords/setstore"
)

var _ MessageRuleFunc = simpleRule

func simpleRule(c *MessageContext) error {
	for _, tok := range strings.Fields(strings.ToLower(c.Message.Text)) {
		if c.InSet("bad-words", tok) {
			c.AddLabel("bad-word")
			break
		}
	}
	return nil
}

// Access to the private effects field, for tests in other packages.
func ExtractEffects(c *BaseContext) *Effects {
	return c.effects
}

func EngineTestFixture() Engine {
	rules := RuleSet{
		MessageRules: []MessageRuleFunc{
			simpleRule,
		},
	}
	cache := cachestore.NewMemCacheStore(10, time.Hour)
	flags := flagstore.NewMemFlagStore()
	sets := setstore.NewMemSetStore()
	_ = sets.AddToSet(context.Background(), "bad-words", []string{"hippopotamus"})
	eng := Engine{
		Logger:   slog.Default(),
		Counters: countstore.NewMemCountStore(),
		Sets:     sets,
		Flags:    flags,
		Cache:    cache,
		Rules:    rules,
		Mood:     mood.NewAnalyzer(),
	}
	return eng
}
