package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/util"
)

// triggers on the N+1 message
var identicalMessageLimit = 6

var _ engine.MessageRuleFunc = IdenticalMessageRule

// Looks for authors sending the exact same text many times. There can be
// legitimate situations that trigger this rule, so it reports rather than
// labels.
func IdenticalMessageRule(c *engine.MessageContext) error {
	// don't action short messages
	if utf8.RuneCountInString(c.Message.Text) <= 10 {
		return nil
	}

	// one counter per unique author/text pair
	bucket := c.Message.Author.ID + "/" + util.HashOfString(c.Message.Text)
	c.Increment("message-text", bucket)

	count := c.GetCount("message-text", bucket, countstore.PeriodDay)
	if count >= identicalMessageLimit {
		c.AddFlag("multi-identical-message")
		c.Report(engine.ReportReasonSpam, fmt.Sprintf("possible spam (%d identical messages today)", count))
	}
	return nil
}
