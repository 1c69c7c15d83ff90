package domain

import "strings"

// ParseTerms splits a filter string on whitespace into lower-case terms.
func ParseTerms(s string) []string {
	fields := strings.Fields(s)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, strings.ToLower(f))
	}
	return terms
}

// Matches reports whether path contains every include term and none of the exclude terms,
// comparing case-insensitively. Empty terms are ignored.
func Matches(path string, include, exclude []string) bool {
	lower := strings.ToLower(path)
	for _, term := range include {
		if term != "" && !strings.Contains(lower, strings.ToLower(term)) {
			return false
		}
	}
	for _, term := range exclude {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// Filter is a parsed pair of include and exclude term lists.
type Filter struct {
	Include []string
	Exclude []string
}

// NewFilter parses the space-separated include and exclude strings.
func NewFilter(include, exclude string) Filter {
	return Filter{
		Include: ParseTerms(include),
		Exclude: ParseTerms(exclude),
	}
}

// Matches reports whether path passes the filter.
func (f Filter) Matches(path string) bool {
	return Matches(path, f.Include, f.Exclude)
}
