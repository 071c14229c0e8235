package rules

import (
	"fmt"

	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/mood"
)

// triggers on the N+1 message
var negativeMoodDailyLimit = 10

var _ engine.MessageRuleFunc = NegativeMoodMessageRule

// Tracks authors who post a stream of negative-mood messages. A single
// negative message is not actionable on its own, so this only counts until
// the daily limit is crossed.
func NegativeMoodMessageRule(c *engine.MessageContext) error {
	analyzer := c.MoodAnalyzer()
	if analyzer == nil {
		return nil
	}
	res := analyzer.Analyze(c.Message.Text)
	if res.Label != mood.Negative {
		return nil
	}

	authorID := c.Message.Author.ID
	c.Increment("negative-mood", authorID)
	count := c.GetCount("negative-mood", authorID, countstore.PeriodDay)
	if count >= negativeMoodDailyLimit {
		c.AddFlag("persistent-negativity")
		c.Report(engine.ReportReasonRude, fmt.Sprintf("%d negative-mood messages today (so far)", count))
	}
	return nil
}
