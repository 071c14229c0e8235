package keyword

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer applies transformations used to defeat common keyword
// obfuscation: unicode folding, homoglyph replacement, leetspeak
// substitution, and cyrillic transliteration.
//
// Word lists and query text must go through the same Normalizer config for
// matching to work; Process is deterministic and idempotent for a fixed
// config.
type Normalizer struct {
	// lowercase plus compatibility decomposition with combining marks stripped
	Fold bool
	// leetspeak digits/symbols to letters, separator chars stripped
	Aggressive bool
	// cyrillic to latin
	Transliterate bool
	// confusable unicode code points to their ASCII look-alikes
	ReplaceHomoglyphs bool
}

// NewNormalizer returns a Normalizer with every transformation enabled.
func NewNormalizer() Normalizer {
	return Normalizer{
		Fold:              true,
		Aggressive:        true,
		Transliterate:     true,
		ReplaceHomoglyphs: true,
	}
}

// code points which render (near-)identically to ASCII letters
var homoglyphs = map[rune]rune{
	// cyrillic
	'а': 'a', 'е': 'e', 'о': 'o', 'с': 'c', 'р': 'p', 'х': 'x', 'у': 'y',
	'к': 'k', 'т': 't', 'м': 'm', 'н': 'h', 'в': 'b', 'ѕ': 's', 'і': 'i',
	'ј': 'j', 'ԁ': 'd', 'ѡ': 'w',
	// greek
	'α': 'a', 'ε': 'e', 'ο': 'o', 'ι': 'i', 'κ': 'k', 'ν': 'v', 'τ': 't',
	'υ': 'u', 'ρ': 'p', 'χ': 'x', 'β': 'b',
}

var leet = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a', '5': 's', '6': 'g', '7': 't',
	'8': 'b', '9': 'g', '@': 'a', '$': 's', '!': 'i', '+': 't', '|': 'l',
}

// chars commonly inserted inside a word to break up matching
const separatorChars = ".-_*'\"`~^"

var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Process runs the configured transformations over text, in a fixed order:
// fold, homoglyph replacement, transliteration, leetspeak/separator cleanup.
func (n Normalizer) Process(text string) string {
	out := text
	if n.Fold {
		out = foldText(out)
	}
	if n.ReplaceHomoglyphs {
		out = strings.Map(func(r rune) rune {
			if repl, ok := homoglyphs[r]; ok {
				return repl
			}
			return r
		}, out)
	}
	if n.Transliterate {
		var b strings.Builder
		b.Grow(len(out))
		for _, r := range out {
			if repl, ok := translit[r]; ok {
				b.WriteString(repl)
			} else {
				b.WriteRune(r)
			}
		}
		out = b.String()
	}
	if n.Aggressive {
		out = strings.Map(func(r rune) rune {
			if repl, ok := leet[r]; ok {
				return repl
			}
			if strings.ContainsRune(separatorChars, r) {
				return -1
			}
			return r
		}, out)
	}
	return out
}

func foldText(text string) string {
	// NFKD (not plain NFD) so that fullwidth and other compatibility forms
	// collapse to their ASCII equivalents
	normFunc := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	lower := strings.ToLower(text)
	out, _, err := transform.String(normFunc, lower)
	if err != nil {
		return lower
	}
	return out
}
