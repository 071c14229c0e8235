package rules

import (
	"github.com/moderation-tools/badwords/engine"
)

func DefaultRules() engine.RuleSet {
	rules := engine.RuleSet{
		MessageRules: []engine.MessageRuleFunc{
			GtubeMessageRule,
			BadWordMessageRule,
			TokenBadWordMessageRule,
			NegativeMoodMessageRule,
			IdenticalMessageRule,
			DistinctMentionsRule,
		},
		ImageRules: []engine.ImageRuleFunc{
			ClassifyImageRule,
		},
	}
	return rules
}
