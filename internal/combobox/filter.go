package combobox

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Matcher narrows an option list down to the entries matching query.
type Matcher interface {
	Match(query string, opts []Option) []Option
}

// SubstringMatcher keeps options whose label contains the query, ignoring
// case. Source order is preserved.
type SubstringMatcher struct{}

// Match implements Matcher.
func (SubstringMatcher) Match(query string, opts []Option) []Option {
	if query == "" {
		return opts
	}
	// A Caser is stateful; one per call.
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if strings.Contains(fold.String(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}

// FuzzyMatcher ranks options by fuzzy score against the label, best first.
type FuzzyMatcher struct{}

// Match implements Matcher.
func (FuzzyMatcher) Match(query string, opts []Option) []Option {
	if query == "" {
		return opts
	}
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, opts[m.Index])
	}
	return out
}

// MatcherByName maps a config name to a Matcher. Unknown names fall back to
// substring matching.
func MatcherByName(name string) Matcher {
	if name == "fuzzy" {
		return FuzzyMatcher{}
	}
	return SubstringMatcher{}
}
