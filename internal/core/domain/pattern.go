package domain

import (
	"path/filepath"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// ValidatePattern checks the whole of pattern against the filepath.Match
// syntax. filepath.Match itself only reports a malformed pattern when matching
// reaches the bad part, so a glob like "res*[" can pass a single trial match.
func ValidatePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
			if i >= len(pattern) {
				return badPattern(pattern)
			}
		case '[':
			i++
			if i < len(pattern) && pattern[i] == '^' {
				i++
			}
			for n := 0; ; n++ {
				if i >= len(pattern) {
					return badPattern(pattern)
				}
				if pattern[i] == ']' && n > 0 {
					break
				}
				next, ok := classChar(pattern, i)
				if !ok {
					return badPattern(pattern)
				}
				i = next
				if i < len(pattern) && pattern[i] == '-' {
					if next, ok = classChar(pattern, i+1); !ok {
						return badPattern(pattern)
					}
					i = next
				}
			}
		}
	}
	return nil
}

// classChar returns the index after the class character at i.
func classChar(pattern string, i int) (int, bool) {
	if i >= len(pattern) || pattern[i] == '-' || pattern[i] == ']' {
		return 0, false
	}
	if pattern[i] == '\\' {
		i++
		if i >= len(pattern) {
			return 0, false
		}
	}
	_, width := utf8.DecodeRuneInString(pattern[i:])
	return i + width, true
}

func badPattern(pattern string) error {
	return zerr.With(zerr.Wrap(filepath.ErrBadPattern, "malformed glob"), "pattern", pattern)
}
