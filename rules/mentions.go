package rules

import (
	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/engine"
)

var _ engine.MessageRuleFunc = DistinctMentionsRule

var mentionHourlyThreshold = 40

// DistinctMentionsRule looks for authors which mention an unusually large
// number of distinct handles per period.
func DistinctMentionsRule(c *engine.MessageContext) error {
	authorID := c.Message.Author.ID

	mentions := ExtractMentions(c.Message.Text)
	for _, handle := range mentions {
		c.IncrementDistinct("mentions", authorID, handle)
	}
	if len(mentions) == 0 {
		return nil
	}

	if mentionHourlyThreshold <= c.GetCountDistinct("mentions", authorID, countstore.PeriodHour) {
		c.AddFlag("high-distinct-mentions")
	}
	return nil
}
