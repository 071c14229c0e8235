package keyword

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^\pL\pN]+`)

// Slugify reduces a string to lower-case letters and digits, dropping
// everything else. Word-list entries and query tokens both pass through
// this, so "D-a.m_n" and "damn" compare equal.
func Slugify(orig string) string {
	return strings.ToLower(nonSlugChars.ReplaceAllString(orig, ""))
}
