package rules

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/profanity"
)

func TestGtubeMessageRule(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := engine.EngineTestFixture()

	mc1 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-1",
		Text:   "some message blah",
	})
	assert.NoError(GtubeMessageRule(&mc1))
	eff1 := engine.ExtractEffects(&mc1.BaseContext)
	assert.Empty(eff1.Labels)

	mc2 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-2",
		Text:   "lorem ipsum " + gtubeString + " dolor",
	})
	assert.NoError(GtubeMessageRule(&mc2))
	eff2 := engine.ExtractEffects(&mc2.BaseContext)
	assert.Equal([]string{"spam"}, eff2.Labels)
}

func TestBadWordMessageRule(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	eng := engine.EngineTestFixture()
	filter, err := profanity.New(
		profanity.WithLanguages("en"),
		profanity.WithWords("frack"),
	)
	require.NoError(err)
	eng.Profanity = filter

	mc1 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-1",
		Text:   "a perfectly fine message",
	})
	assert.NoError(BadWordMessageRule(&mc1))
	eff1 := engine.ExtractEffects(&mc1.BaseContext)
	assert.Empty(eff1.Labels)
	assert.Empty(eff1.Flags)

	mc2 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-2",
		Text:   "oh f.r.a.c.k that",
	})
	assert.NoError(BadWordMessageRule(&mc2))
	eff2 := engine.ExtractEffects(&mc2.BaseContext)
	assert.Equal([]string{"obscene"}, eff2.Labels)
	assert.Equal([]string{"bad-word"}, eff2.Flags)
}

func TestTokenBadWordMessageRule(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := engine.EngineTestFixture()
	assert.NoError(eng.Sets.AddToSet(ctx, "worst-words", []string{"grumble"}))

	mc1 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-1",
		Text:   "nothing to see here",
	})
	assert.NoError(TokenBadWordMessageRule(&mc1))
	eff1 := engine.ExtractEffects(&mc1.BaseContext)
	assert.Empty(eff1.Flags)
	assert.Empty(eff1.Reports)

	// de-pluralized token should still hit the set
	mc2 := engine.NewMessageContext(ctx, &eng, engine.MessageEvent{
		Author: engine.Author{ID: "user-1"},
		ID:     "msg-2",
		Text:   "Grumbles all around",
	})
	assert.NoError(TokenBadWordMessageRule(&mc2))
	eff2 := engine.ExtractEffects(&mc2.BaseContext)
	assert.Equal([]string{"bad-word"}, eff2.Flags)
	assert.Len(eff2.Reports, 1)
	assert.Equal(engine.ReportReasonRude, eff2.Reports[0].Reason)
}

func TestNegativeMoodMessageRule(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := engine.EngineTestFixture()
	eng.Rules = engine.RuleSet{
		MessageRules: []engine.MessageRuleFunc{
			NegativeMoodMessageRule,
		},
	}
	author := engine.Author{ID: "user-1"}

	// single negative message is counted but not actioned
	assert.NoError(eng.ProcessMessage(ctx, engine.MessageEvent{
		Author: author,
		ID:     "msg-0",
		Text:   "this is awful and horrible and sad",
	}))
	flags, err := eng.Flags.Get(ctx, "user-1")
	assert.NoError(err)
	assert.Empty(flags)

	for i := 1; i <= negativeMoodDailyLimit+1; i++ {
		assert.NoError(eng.ProcessMessage(ctx, engine.MessageEvent{
			Author: author,
			ID:     fmt.Sprintf("msg-%d", i),
			Text:   "this is awful and horrible and sad",
		}))
	}
	flags, err = eng.Flags.Get(ctx, "user-1")
	assert.NoError(err)
	assert.Equal([]string{"persistent-negativity"}, flags)
}

func TestIdenticalMessageRule(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := engine.EngineTestFixture()
	eng.Rules = engine.RuleSet{
		MessageRules: []engine.MessageRuleFunc{
			IdenticalMessageRule,
		},
	}
	author := engine.Author{ID: "user-1"}

	for i := 0; i <= identicalMessageLimit; i++ {
		assert.NoError(eng.ProcessMessage(ctx, engine.MessageEvent{
			Author: author,
			ID:     fmt.Sprintf("msg-%d", i),
			Text:   "buy my widgets at widgets dot example dot com",
		}))
	}
	flags, err := eng.Flags.Get(ctx, "user-1")
	assert.NoError(err)
	assert.Equal([]string{"multi-identical-message"}, flags)

	// short messages are never counted
	flags, err = eng.Flags.Get(ctx, "user-2")
	assert.NoError(err)
	assert.Empty(flags)
}
