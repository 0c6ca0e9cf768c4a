package match

import (
	"sort"
	"strings"
)

// Normalize lowercases and trims a free-text attribute for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TokenSet is a normalized set of short free-text phrases ("python",
// "data analysis"). It is the unit of comparison for skills, interests
// and education levels.
type TokenSet map[string]struct{}

// NewTokenSet builds a token set from free-text items. Each item may
// itself be a delimited list: commas and semicolons are equivalent
// separators, so ["python, data analysis; ai"] and
// ["python", "data analysis", "ai"] produce the same set. Empty tokens
// are dropped after trimming.
func NewTokenSet(items ...string) TokenSet {
	set := make(TokenSet)
	for _, item := range items {
		for _, part := range strings.FieldsFunc(item, isSeparator) {
			if tok := Normalize(part); tok != "" {
				set[tok] = struct{}{}
			}
		}
	}
	return set
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';'
}

// Len returns the number of tokens in the set.
func (s TokenSet) Len() int {
	return len(s)
}

// Contains reports whether the set holds the normalized form of tok.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[Normalize(tok)]
	return ok
}

// Intersect returns the tokens present in both sets.
func (s TokenSet) Intersect(other TokenSet) TokenSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(TokenSet)
	for tok := range small {
		if _, ok := large[tok]; ok {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tokens in lexicographic order, for stable
// human-readable reason strings.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
