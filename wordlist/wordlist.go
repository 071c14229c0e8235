// Package wordlist loads per-language keyword lists, either from the
// resource files bundled in to the package, or from an external directory
// with the same layout (one UTF-8 text file per language, named
// "<code>.bdw", one word or phrase per line).
package wordlist

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed resource
var resourceFS embed.FS

var ErrUnsupportedLanguage = errors.New("unsupported language")

const fileSuffix = ".bdw"

// Languages returns the sorted language codes bundled with this package.
func Languages() []string {
	entries, err := resourceFS.ReadDir("resource")
	if err != nil {
		// embedded directory is part of the build
		panic(err)
	}
	var out []string
	for _, e := range entries {
		if code, ok := langCode(e.Name()); ok {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// Load returns the bundled word list for a language code.
func Load(lang string) ([]string, error) {
	code, ok := langCode(lang + fileSuffix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	raw, err := resourceFS.ReadFile("resource/" + code + fileSuffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return parseWords(raw), nil
}

// LoadDir reads every "<code>.bdw" file from an external directory and
// returns words grouped by language code. Files with non-alphabetic or
// non-two-letter codes are skipped, matching the bundled resource layout.
func LoadDir(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading word list dir: %w", err)
	}
	out := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		code, ok := langCode(e.Name())
		if !ok {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading word list %s: %w", e.Name(), err)
		}
		out[code] = parseWords(raw)
	}
	return out, nil
}

// extracts and sanitizes the two-letter language code from a file name
func langCode(name string) (string, bool) {
	if !strings.HasSuffix(name, fileSuffix) {
		return "", false
	}
	code := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(name, fileSuffix)))
	if len(code) != 2 {
		return "", false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return code, true
}

func parseWords(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		w := strings.TrimSpace(l)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}
