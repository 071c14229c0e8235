package rules

import (
	"strings"

	"github.com/moderation-tools/badwords/engine"
)

// https://en.wikipedia.org/wiki/GTUBE
var gtubeString = "XJS*C4JDBQADN1.NSBN3*2IDNEN*GTUBE-STANDARD-ANTI-UBE-TEST-EMAIL*C.34X"

func GtubeMessageRule(c *engine.MessageContext) error {
	if strings.Contains(c.Message.Text, gtubeString) {
		c.AddLabel("spam")
	}
	return nil
}
