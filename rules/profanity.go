package rules

import (
	"fmt"
	"strings"

	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/keyword"
)

var _ engine.MessageRuleFunc = BadWordMessageRule

// tuned against obfuscated variants in the word-list tests; raising it
// misses single-substitution tricks, lowering it flags short clean words
var fuzzyMatchThreshold = 0.85

// Runs the configured profanity filter over message text, including
// normalization and fuzzy matching against the loaded word lists.
func BadWordMessageRule(c *engine.MessageContext) error {
	filter := c.Profanity()
	if filter == nil {
		return nil
	}
	matches := filter.Match(c.Message.Text, fuzzyMatchThreshold)
	if len(matches) == 0 {
		return nil
	}
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	c.Logger.Info("profanity match", "words", words)
	c.AddLabel("obscene")
	c.AddFlag("bad-word")
	c.Increment("obscene", c.Message.Author.ID)
	return nil
}

var _ engine.MessageRuleFunc = TokenBadWordMessageRule

// Checks individual message tokens against the "worst-words" set. Set
// membership means an immediate report, not just a flag.
func TokenBadWordMessageRule(c *engine.MessageContext) error {
	for _, tok := range keyword.TokenizeText(c.Message.Text) {
		// de-pluralize
		tok = strings.TrimSuffix(tok, "s")
		if c.InSet("worst-words", tok) {
			c.AddFlag("bad-word")
			c.Report(engine.ReportReasonRude, fmt.Sprintf("message contains listed word: %s", tok))
			break
		}
	}
	return nil
}
