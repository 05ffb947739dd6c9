// Package search implements the bilingual holiday search pipeline: text
// normalization, alias-closure query expansion and catalog filtering.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes input (NFKD) and drops every combining mark, which
// removes Hebrew niqqud and cantillation and Latin accents in one pass.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// quote characters removed outright so "New Year's" and a Hebrew
// geresh/gershayim both lose their marks instead of splitting into words.
const quoteRunes = "'‘’ʼ׳\"“”״`"

// Normalize canonicalizes free text for comparison: lowercase, NFKD with
// combining marks stripped, quote variants removed, "&" spelled out, every
// non-letter/digit run collapsed to a single space, edges trimmed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case strings.ContainsRune(quoteRunes, r):
			// dropped, no word boundary introduced
		case r == '&':
			if b.Len() > 0 {
				space = true
			}
			flushSpace(&b, &space)
			b.WriteString("and")
			space = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushSpace(&b, &space)
			b.WriteRune(r)
		default:
			if b.Len() > 0 {
				space = true
			}
		}
	}
	return b.String()
}

func flushSpace(b *strings.Builder, pending *bool) {
	if *pending && b.Len() > 0 {
		b.WriteByte(' ')
	}
	*pending = false
}

// Compact removes the remaining whitespace from a normalized string so
// "tu bishvat" and "tubishvat" compare equal.
func Compact(normalized string) string {
	return strings.ReplaceAll(normalized, " ", "")
}

// HebrewSkeleton strips the optional vowel-indicator letters vav and yod from
// a compacted string, but only when the string actually contains Hebrew
// script. Latin text passes through as "" so "v"/"y" are never misread as
// matres lectionis.
func HebrewSkeleton(compacted string) string {
	if !containsHebrew(compacted) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == 'ו' || r == 'י' {
			return -1
		}
		return r
	}, compacted)
}

func containsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}
