package rules

import (
	"strings"

	"github.com/moderation-tools/badwords/engine"
	"github.com/moderation-tools/badwords/util"
)

var _ engine.ImageRuleFunc = ClassifyImageRule

// Sends image bytes to the configured classification service and applies
// any returned labels. Verdicts are cached by content hash so re-submitted
// images don't cost another API call.
func ClassifyImageRule(c *engine.ImageContext) error {
	cl := c.Classifier()
	if cl == nil {
		return nil
	}

	key := util.HashOfString(string(c.Image.Bytes))
	if val := c.CacheGet("verdict", key); val != "" {
		if val != "ok" {
			for _, l := range strings.Split(val, ",") {
				c.AddLabel(l)
			}
		}
		return nil
	}

	labels, err := cl.ClassifyImage(c.Ctx, c.Image.ID, c.Image.Bytes)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		c.CacheSet("verdict", key, "ok")
		return nil
	}
	c.CacheSet("verdict", key, strings.Join(labels, ","))
	for _, l := range labels {
		c.AddLabel(l)
	}
	return nil
}
