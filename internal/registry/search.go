package registry

import (
	"sort"
	"strings"
	"unicode"
)

// Search limits. Requests above MaxLimit are clamped; non-positive or absent
// limits fall back to DefaultLimit.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Query carries the optional filters of one search. Empty fields mean
// "no filter": an entirely empty query matches the whole catalog.
type Query struct {
	Component string
	Severity  string
	Scope     string
	Category  string
	Keyword   string
	Limit     int
}

// Score weights. Filter matches reward exactness; keyword hits reward
// stronger evidence (exact name > name substring > keyword set > component >
// description > name words).
const (
	scoreComponent = 50
	scoreSeverity  = 30
	scoreScope     = 30
	scoreCategory  = 30

	scoreNameExact     = 100
	scoreNameSubstring = 80
	scoreKeywordEntry  = 20
	scoreComponentHit  = 15
	scoreDescription   = 10
	scoreNameWord      = 5
)

// scored pairs a descriptor with its ranking score. Transient: built during
// a search and discarded after sorting.
type scored struct {
	descriptor Descriptor
	score      int
}

// Search returns descriptors matching the query, ranked by score descending
// with ties broken by name ascending. It is pure and total: any query,
// including an empty one, produces a (possibly empty) slice and never an
// error.
func (r *Registry) Search(q Query) []Descriptor {
	candidates := make([]scored, 0, len(r.descriptors))

	for _, d := range r.descriptors {
		score := 0

		if q.Component != "" {
			if !strings.EqualFold(q.Component, d.Component) {
				continue
			}
			score += scoreComponent
		}
		if q.Severity != "" {
			if q.Severity != string(d.Severity) {
				continue
			}
			score += scoreSeverity
		}
		if q.Scope != "" {
			if q.Scope != string(d.Scope) {
				continue
			}
			score += scoreScope
		}
		if q.Category != "" {
			if q.Category != string(d.Category) {
				continue
			}
			score += scoreCategory
		}
		if q.Keyword != "" {
			kw := keywordScore(d, q.Keyword)
			if kw == 0 {
				continue
			}
			score += kw
		}

		candidates = append(candidates, scored{descriptor: d, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].descriptor.Name < candidates[j].descriptor.Name
	})

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	results := make([]Descriptor, 0, limit)
	for _, c := range candidates[:limit] {
		results = append(results, c.descriptor)
	}
	return results
}

// keywordScore computes how strongly a descriptor matches a free-text
// keyword. Zero means no match at all, which excludes the descriptor when a
// keyword filter is present. Substring tests are case-insensitive and, for
// the keyword set and name words, bidirectional.
func keywordScore(d Descriptor, keyword string) int {
	kw := strings.ToLower(keyword)
	name := strings.ToLower(d.Name)

	score := 0

	switch {
	case name == kw:
		score += scoreNameExact
	case strings.Contains(name, kw):
		score += scoreNameSubstring
	}

	for _, entry := range d.Keywords {
		e := strings.ToLower(entry)
		if strings.Contains(e, kw) || strings.Contains(kw, e) {
			score += scoreKeywordEntry
		}
	}

	if strings.Contains(strings.ToLower(d.Description), kw) {
		score += scoreDescription
	}

	if d.Component != "" && strings.Contains(strings.ToLower(d.Component), kw) {
		score += scoreComponentHit
	}

	for _, word := range splitCamelCase(d.Name) {
		if strings.Contains(word, kw) || strings.Contains(kw, word) {
			score += scoreNameWord
			break
		}
	}

	return score
}

// splitCamelCase splits a name at uppercase transitions and lower-cases each
// word: "getFailingPods" becomes ["get", "failing", "pods"].
func splitCamelCase(name string) []string {
	var words []string
	var current strings.Builder

	for _, r := range name {
		if unicode.IsUpper(r) && current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, strings.ToLower(current.String()))
	}
	return words
}
