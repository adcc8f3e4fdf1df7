package domain

import (
	"os"
	"regexp"
	"slices"
	"strings"
)

var (
	includePattern = regexp.MustCompile(`@Include\(@?"(.*?)"`)
	layoutPattern  = regexp.MustCompile(`this\.Layout = @"(.*?)";`)
)

// FindIncludes returns the quoted arguments of every include directive in source, in order.
func FindIncludes(source string) []string {
	matches := includePattern.FindAllStringSubmatch(source, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// FindLayout returns the argument of the first layout directive in source.
func FindLayout(source string) (string, bool) {
	m := layoutPattern.FindStringSubmatch(source)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FixPathSeparators rewrites backslashes to the OS path separator.
func FixPathSeparators(name string) string {
	if os.PathSeparator == '\\' {
		return name
	}
	return strings.ReplaceAll(name, `\`, string(os.PathSeparator))
}

// TokenList maps include names to the absolute paths they were compiled under.
type TokenList struct {
	tokens map[string]string
	order  []string
}

// NewTokenList returns an empty TokenList.
func NewTokenList() *TokenList {
	return &TokenList{tokens: make(map[string]string)}
}

// Add records that the include name from should become to. Repeated names keep their first mapping.
func (t *TokenList) Add(from, to string) {
	if _, ok := t.tokens[from]; ok || from == "" {
		return
	}
	t.tokens[from] = to
	t.order = append(t.order, from)
}

// Replace substitutes every literal occurrence of each recorded name in one pass.
// Longer names win over names they contain.
func (t *TokenList) Replace(source string) string {
	if len(t.order) == 0 {
		return source
	}

	names := slices.Clone(t.order)
	slices.SortStableFunc(names, func(a, b string) int { return len(b) - len(a) })

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, name, t.tokens[name])
	}
	return strings.NewReplacer(pairs...).Replace(source)
}
