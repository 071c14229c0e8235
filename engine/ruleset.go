package engine

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

type MessageRuleFunc func(c *MessageContext) error
type ImageRuleFunc func(c *ImageContext) error

// Holds configuration of which rules should be run, and dispatches events
// to those rules.
type RuleSet struct {
	MessageRules []MessageRuleFunc
	ImageRules   []ImageRuleFunc
}

// Executes all message rules. Only dispatches execution, does no other
// de-dupe or pre/post processing.
func (r *RuleSet) CallMessageRules(c *MessageContext) error {
	for _, f := range r.MessageRules {
		if err := f(c); err != nil {
			return err
		}
	}
	return nil
}

// Executes all image rules, concurrently. Effects mutators are
// mutex-guarded, so rules can safely accumulate from multiple goroutines.
func (r *RuleSet) CallImageRules(c *ImageContext) error {
	if len(r.ImageRules) == 0 {
		return nil
	}
	if !strings.HasPrefix(c.Image.MimeType, "image/") {
		return nil
	}

	var eg errgroup.Group
	for _, f := range r.ImageRules {
		eg.Go(func() (err error) {
			// rules run on their own goroutines, so a recover further up
			// the call stack would never see a panic from here
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("image rule execution exception: %v", r)
				}
			}()
			return f(c)
		})
	}
	return eg.Wait()
}
