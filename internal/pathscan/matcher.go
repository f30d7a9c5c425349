package pathscan

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// MatchOptions selects how a keyword is compared with entry names.
type MatchOptions struct {
	// Regex treats the keyword as an RE2 pattern.
	Regex bool
	// IgnoreCase applies Unicode case folding to both sides.
	IgnoreCase bool
}

// Matcher classifies an entry name.
type Matcher interface {
	Match(name string) Kind
}

// NewMatcher builds the Matcher for keyword. Only a regex keyword can fail.
func NewMatcher(keyword string, opts MatchOptions) (Matcher, error) {
	if !opts.Regex {
		m := &literalMatcher{keyword: keyword}
		if opts.IgnoreCase {
			c := cases.Fold()
			m.fold = c.String
			m.keyword = m.fold(keyword)
		}
		return m, nil
	}

	flags := ""
	if opts.IgnoreCase {
		flags = "(?i)"
	}
	partial, err := regexp.Compile(flags + keyword)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", keyword, err)
	}
	whole, err := regexp.Compile(flags + `^(?:` + keyword + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", keyword, err)
	}
	return &regexMatcher{partial: partial, whole: whole}, nil
}

// literalMatcher is the byte-for-byte equality / substring test.
type literalMatcher struct {
	keyword string
	fold    func(string) string
}

func (m *literalMatcher) Match(name string) Kind {
	if m.fold != nil {
		name = m.fold(name)
	}
	switch {
	case name == m.keyword:
		return Exact
	case strings.Contains(name, m.keyword):
		return Related
	default:
		return NoMatch
	}
}

type regexMatcher struct {
	partial *regexp.Regexp
	whole   *regexp.Regexp
}

func (m *regexMatcher) Match(name string) Kind {
	switch {
	case m.whole.MatchString(name):
		return Exact
	case m.partial.MatchString(name):
		return Related
	default:
		return NoMatch
	}
}
