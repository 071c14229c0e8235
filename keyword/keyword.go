// Package keyword implements text normalization and tokenization for
// word-list matching: unicode folding, obfuscation-defeating substitution,
// slugs, and a similarity ratio for near-miss comparison.
package keyword

import "slices"

// TokenInSet checks a single processed token against a list of processed
// tokens. Case-sensitive; callers are expected to have slugified both
// sides.
func TokenInSet(tok string, set []string) bool {
	return slices.Contains(set, tok)
}
