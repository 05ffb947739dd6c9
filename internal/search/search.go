package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/luachhq/luach-api/internal/models"
)

// MaxResults caps every filter call.
const MaxResults = 15

// minSkeletonLen guards the Hebrew-skeleton path: fragments shorter than this
// hit too many unrelated names once the vowel letters are gone.
const minSkeletonLen = 3

// ExpandTerms normalizes the query and widens it with its alias closure. Any
// alias-group member that contains the query (or is contained by it), under
// either the whitespace-normalized or fully-compacted comparison, pulls the
// whole group into the term set. An empty query yields no terms.
func ExpandTerms(query string) []string {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	cq := Compact(q)

	terms := map[string]struct{}{q: {}}
	for key, variants := range aliases {
		group := append([]string{key}, variants...)
		matched := false
		for _, member := range group {
			nm := Normalize(member)
			if containsEither(nm, q) || containsEither(Compact(nm), cq) {
				matched = true
				break
			}
		}
		if matched {
			for _, member := range group {
				terms[Normalize(member)] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(terms))
	for t := range terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Filter returns the holidays matching the query, ranked by category weight
// then by how soon they start, capped at MaxResults. An empty or
// whitespace-only query matches nothing: search is opt-in, not a listing.
func Filter(holidays []models.Holiday, query string) []models.Holiday {
	terms := ExpandTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type termForms struct {
		norm     string
		compact  string
		skeleton string
	}
	forms := make([]termForms, 0, len(terms))
	for _, t := range terms {
		c := Compact(t)
		forms = append(forms, termForms{norm: t, compact: c, skeleton: HebrewSkeleton(c)})
	}

	var matched []models.Holiday
	for _, h := range holidays {
		title := Normalize(h.Title)
		compactTitle := Compact(title)

		var hebrew, compactHebrew, skeletonHebrew string
		if h.Hebrew != "" {
			hebrew = Normalize(h.Hebrew)
			compactHebrew = Compact(hebrew)
			skeletonHebrew = HebrewSkeleton(compactHebrew)
		}

		for _, f := range forms {
			ok := containsEither(title, f.norm) || containsEither(compactTitle, f.compact)
			if !ok && hebrew != "" {
				ok = containsEither(hebrew, f.norm) || containsEither(compactHebrew, f.compact)
				if !ok && skeletonHebrew != "" && utf8.RuneCountInString(f.skeleton) >= minSkeletonLen {
					ok = containsEither(skeletonHebrew, f.skeleton)
				}
			}
			if ok {
				matched = append(matched, h)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		wi, wj := matched[i].Category.Weight(), matched[j].Category.Weight()
		if wi != wj {
			return wi < wj
		}
		return matched[i].DaysUntil < matched[j].DaysUntil
	})

	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
