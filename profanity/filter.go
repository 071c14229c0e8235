// Package profanity implements word-list based obscenity detection and
// censoring, with normalization to catch common obfuscation (leetspeak,
// homoglyphs, separator padding, cyrillic look-alikes).
//
// A Filter is constructed once, from bundled or external per-language word
// lists, and is safe for concurrent use. Word lists and query text are run
// through the same normalization pipeline, so an obfuscated list entry and
// an obfuscated query both reduce to the same matchable form.
package profanity

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/moderation-tools/badwords/keyword"
	"github.com/moderation-tools/badwords/wordlist"
)

// A single word-list hit within a text.
type Match struct {
	// the token as it appeared in the input
	Token string
	// the processed list word that matched
	Word string
	// byte offsets of the token within the input
	Start int
	End   int
}

type Filter struct {
	norm  keyword.Normalizer
	langs []string

	mu    sync.RWMutex
	words map[string]bool
}

type config struct {
	langs   []string
	wordDir string
	norm    keyword.Normalizer
	extra   []string
}

type Option func(*config)

// WithLanguages restricts the filter to the given language codes. New
// returns wordlist.ErrUnsupportedLanguage if any code has no word list.
func WithLanguages(langs ...string) Option {
	return func(c *config) {
		c.langs = langs
	}
}

// WithWordDir loads word lists from an external directory instead of the
// bundled resource files.
func WithWordDir(dir string) Option {
	return func(c *config) {
		c.wordDir = dir
	}
}

// WithNormalizer overrides the default (fully enabled) normalization config.
func WithNormalizer(n keyword.Normalizer) Option {
	return func(c *config) {
		c.norm = n
	}
}

// WithWords adds custom words on top of the loaded lists.
func WithWords(words ...string) Option {
	return func(c *config) {
		c.extra = append(c.extra, words...)
	}
}

func New(opts ...Option) (*Filter, error) {
	cfg := config{
		norm: keyword.NewNormalizer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	lists := make(map[string][]string)
	if cfg.wordDir != "" {
		loaded, err := wordlist.LoadDir(cfg.wordDir)
		if err != nil {
			return nil, err
		}
		lists = loaded
	} else {
		for _, lang := range wordlist.Languages() {
			words, err := wordlist.Load(lang)
			if err != nil {
				return nil, err
			}
			lists[lang] = words
		}
	}

	langs := make([]string, 0, len(lists))
	if len(cfg.langs) > 0 {
		for _, lang := range cfg.langs {
			// list keys are always lower-case codes
			code := strings.ToLower(strings.TrimSpace(lang))
			if _, ok := lists[code]; !ok {
				return nil, fmt.Errorf("%w: %q", wordlist.ErrUnsupportedLanguage, lang)
			}
			langs = append(langs, code)
		}
	} else {
		for lang := range lists {
			langs = append(langs, lang)
		}
	}

	f := &Filter{
		norm:  cfg.norm,
		langs: langs,
		words: make(map[string]bool),
	}
	for _, lang := range langs {
		f.addLocked(lists[lang])
	}
	f.addLocked(cfg.extra)
	return f, nil
}

// Languages returns the language codes this filter was loaded with.
func (f *Filter) Languages() []string {
	out := make([]string, len(f.langs))
	copy(out, f.langs)
	return out
}

// AddWords adds custom words to the filter, processing them through the
// same normalization pipeline as the loaded lists. Safe to call
// concurrently with matching.
func (f *Filter) AddWords(words ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addLocked(words)
}

func (f *Filter) addLocked(words []string) {
	for _, w := range words {
		key := f.processToken(w)
		if key != "" {
			f.words[key] = true
		}
	}
}

// sentence punctuation; trimmed from token ends before normalization so it
// is not mistaken for a leetspeak substitution ("word!" is not "wordi")
const trailingPunct = ".,!?;:…\"')]}»"

// reduces a raw token to its matchable form
func (f *Filter) processToken(tok string) string {
	tok = strings.TrimRight(tok, trailingPunct)
	return keyword.Slugify(f.norm.Process(tok))
}

// Match scans text and returns every word-list hit. A threshold of 1 (or
// anything outside (0,1)) requires exact matches of the processed token;
// a threshold inside (0,1) additionally accepts tokens whose similarity
// ratio against some list word exceeds it.
func (f *Filter) Match(text string, threshold float64) []Match {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []Match
	for _, span := range fieldSpans(text) {
		tok := text[span.start:span.end]
		key := f.processToken(tok)
		if key == "" {
			continue
		}
		if f.words[key] {
			out = append(out, Match{Token: tok, Word: key, Start: span.start, End: span.end})
			continue
		}
		if threshold > 0 && threshold < 1 {
			for w := range f.words {
				if keyword.Ratio(key, w) > threshold {
					out = append(out, Match{Token: tok, Word: w, Start: span.start, End: span.end})
					break
				}
			}
		}
	}
	return out
}

// Detect reports whether text contains any listed word (exact processed
// match).
func (f *Filter) Detect(text string) bool {
	return len(f.Match(text, 1)) > 0
}

// DetectFuzzy is Detect with a similarity threshold in (0,1).
func (f *Filter) DetectFuzzy(text string, threshold float64) bool {
	return len(f.Match(text, threshold)) > 0
}

// Censor returns text with every matched token replaced by the mask rune,
// repeated to the token's length. A zero mask defaults to '*'.
func (f *Filter) Censor(text string, mask rune) string {
	return f.CensorFuzzy(text, mask, 1)
}

// CensorFuzzy is Censor with a similarity threshold in (0,1).
func (f *Filter) CensorFuzzy(text string, mask rune, threshold float64) string {
	matches := f.Match(text, threshold)
	if len(matches) == 0 {
		return text
	}
	if mask == 0 {
		mask = '*'
	}
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range matches {
		b.WriteString(text[prev:m.Start])
		b.WriteString(strings.Repeat(string(mask), utf8.RuneCountInString(m.Token)))
		prev = m.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

type span struct {
	start, end int
}

// whitespace-separated fields, as byte offsets in to the original string
func fieldSpans(s string) []span {
	var out []span
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, span{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(s)})
	}
	return out
}
