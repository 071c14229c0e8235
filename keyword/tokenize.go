package keyword

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonTokenChars = regexp.MustCompile(`[^\pL\pN\s]+`)
	// like nonTokenChars but keeps mask characters, so already-censored
	// words ("d**n") survive as single tokens
	nonTokenCharsKeepMasks = regexp.MustCompile(`[^\pL\pN\s#*_-]`)
)

// Splits free-form text in to lower-case tokens: punctuation becomes
// separators, diacritics are stripped (NFD, combining marks removed, NFC).
//
// Works like an NLP tokenizer as used by a fulltext search engine, so
// tokens can be matched quickly against a list of known tokens.
func tokenizeText(text string, nonToken *regexp.Regexp) []string {
	// transform chains carry internal state; build one per call so
	// concurrent tokenization is safe
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	split := strings.ToLower(nonToken.ReplaceAllString(text, " "))
	bare := strings.ToLower(nonToken.ReplaceAllString(split, ""))
	out, _, err := transform.String(normFunc, bare)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		out = bare
	}
	return strings.Fields(out)
}

func TokenizeText(text string) []string {
	return tokenizeText(text, nonTokenChars)
}

// TokenizeTextKeepingMasks tokenizes like TokenizeText but does not treat
// mask characters (#, *, _, -) as separators. Useful when re-processing
// text that has already been censored.
func TokenizeTextKeepingMasks(text string) []string {
	return tokenizeText(text, nonTokenCharsKeepMasks)
}

func splitIdentRune(c rune) bool {
	return !unicode.IsLetter(c) && !unicode.IsNumber(c)
}

// Splits an identifier (handle, username, domain) in to slug tokens,
// dropping any single-character tokens.
//
// For example, some-user.example.com becomes ["some", "user", "example", "com"]
func TokenizeIdentifier(orig string) []string {
	fields := strings.FieldsFunc(orig, splitIdentRune)
	out := make([]string, 0, len(fields))
	for _, v := range fields {
		tok := Slugify(v)
		if len(tok) > 1 {
			out = append(out, tok)
		}
	}
	return out
}
