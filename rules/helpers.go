package rules

import (
	"regexp"
	"strings"
)

var mentionRegex = regexp.MustCompile(`(?:^|\s)@([a-zA-Z0-9._-]+)`)

// ExtractMentions returns the lower-cased @-mention handles in a text.
func ExtractMentions(raw string) []string {
	var out []string
	for _, m := range mentionRegex.FindAllStringSubmatch(raw, -1) {
		out = append(out, strings.ToLower(m[1]))
	}
	return out
}

var urlRegex = regexp.MustCompile(`(?:(?:https?|ftp):\/\/)?[\w/\-?=%.]+\.[\w/\-&?=%.]*[\w/\-&?=%]+`)

// ExtractURLs returns everything in a text which looks like a URL or bare
// domain.
func ExtractURLs(raw string) []string {
	return urlRegex.FindAllString(raw, -1)
}
