/*
Package match turns raw model-number text into ranked autocomplete
candidates or a single best classification.

Two scoring functions exist on purpose. Rank scores partial, in-flight
queries where many short family names legitimately prefix-match and the
shortest useful completion should surface first. Classify scores a
completed model string, where a longer, more specific keyword must beat a
short generic one contained inside it, so it adds a keyword-length bonus
and consults the catalog's type rules.

Both functions are pure: same catalog and input always produce the same
output, in the same order. Neither ever returns an error; an unrecognized
model is an expected outcome, reported as an empty result.
*/
package match

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/utils"
	"github.com/vshtohryn/assetserve/pkg/catalog"
)

// DefaultLimit is the candidate cap used when the caller passes limit <= 0.
const DefaultLimit = 8

// Scores assigned by the shared 3/1/0 base rule.
const (
	scorePrefix    = 3
	scoreSubstring = 1
)

// Candidate is one ranked autocomplete suggestion. It carries only the
// keyword text: ranking is presentation, it does not resolve which
// manufacturer owns an ambiguous keyword.
type Candidate struct {
	Text  string
	Score int
}

// Classification is the single best match for a completed model string.
// Type is empty unless a type rule fired.
type Classification struct {
	Manufacturer string
	Category     catalog.Category
	Type         string
	Score        int
}

// Rank returns up to limit candidates for a partial query, best first.
// A keyword scores 3 when it starts with the query (case-insensitive),
// 1 when it merely contains it, and is dropped otherwise. Ordering is
// score descending, then keyword length ascending, then catalog order;
// the sort is stable so equal entries keep their declaration order.
// An empty or blank query returns nil without touching the catalog.
func Rank(query string, cat *catalog.Catalog, limit int) []Candidate {
	if utils.IsBlank(query) {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	lower := strings.ToLower(query)
	scores := make([]int, cat.Len())

	// Prefix matches come off the keyword trie; only the remainder needs
	// the linear substring scan.
	cat.VisitPrefix(lower, func(idx int) {
		scores[idx] = scorePrefix
	})
	for i, e := range cat.AllEntries() {
		if scores[i] == 0 && utils.StringContainsIgnoreCase(e.Keyword, lower) {
			scores[i] = scoreSubstring
		}
	}

	matched := make([]int, 0, limit)
	for i, s := range scores {
		if s > 0 {
			matched = append(matched, i)
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		ia, ib := matched[a], matched[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return len(cat.Entry(ia).Keyword) < len(cat.Entry(ib).Keyword)
	})

	// The same keyword text can appear under several manufacturers; a
	// repeated candidate tells the operator nothing, so keep the first.
	seen := make(map[string]bool, len(matched))
	candidates := make([]Candidate, 0, limit)
	for _, idx := range matched {
		kw := cat.Entry(idx).Keyword
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, Candidate{Text: kw, Score: scores[idx]})
		if len(candidates) == limit {
			break
		}
	}
	return candidates
}

// Classify returns the best classification for a completed model string,
// or ok=false when no keyword matches. The base score is 3 when the model
// text starts with the keyword and 1 when it contains it, plus a length
// bonus of min(2, len(keyword)/8) so a long exact family name outranks a
// short generic one it contains. If the manufacturer+category carries type
// rules, the first rule with a matching substring adds 1 and fixes the
// proposed type. The strictly highest score wins; ties keep the
// first-encountered entry in catalog order.
func Classify(modelText string, cat *catalog.Catalog) (Classification, bool) {
	if utils.IsBlank(modelText) {
		return Classification{}, false
	}

	lower := strings.ToLower(modelText)
	best := -1
	bestScore := 0
	bestType := ""

	for i, e := range cat.AllEntries() {
		kw := strings.ToLower(e.Keyword)
		base := 0
		switch {
		case strings.HasPrefix(lower, kw):
			base = scorePrefix
		case strings.Contains(lower, kw):
			base = scoreSubstring
		default:
			continue
		}

		score := base + lengthBonus(e.Keyword)
		typeName := ""
		if rules := cat.TypeRulesFor(e.Manufacturer, e.Category); len(rules) > 0 {
			if name, ok := matchType(rules, lower); ok {
				score++
				typeName = name
			}
		}

		if score > bestScore {
			best = i
			bestScore = score
			bestType = typeName
			continue
		}
		if score == bestScore && best >= 0 {
			// Catalog-order dependent outcome; worth surfacing when a
			// maintainer wonders why one vendor keeps winning.
			log.Debugf("classify tie at score %d: keeping %q over %q for input %q",
				score, cat.Entry(best).Keyword, e.Keyword, modelText)
		}
	}

	if best < 0 {
		return Classification{}, false
	}
	winner := cat.Entry(best)
	return Classification{
		Manufacturer: winner.Manufacturer,
		Category:     winner.Category,
		Type:         bestType,
		Score:        bestScore,
	}, true
}

func lengthBonus(keyword string) int {
	bonus := len(keyword) / 8
	if bonus > 2 {
		bonus = 2
	}
	return bonus
}

// matchType scans the ordered rules against the lowercased model text and
// returns the first rule whose substring set matches.
func matchType(rules []catalog.TypeRule, lowerText string) (string, bool) {
	for _, rule := range rules {
		for _, sub := range rule.Substrings {
			if strings.Contains(lowerText, strings.ToLower(sub)) {
				return rule.Name, true
			}
		}
	}
	return "", false
}
