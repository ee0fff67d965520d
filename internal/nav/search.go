package nav

import (
	"regexp"
	"strings"
)

// Transliterator renders text as a romanized, tone-stripped, lower-cased
// string containing only letters and digits. Implementations must pass
// non-transliterable characters through rather than fail.
//
// The search engine works without one: a nil Transliterator means phonetic
// matching is unavailable and search degrades to literal substring
// matching.
type Transliterator interface {
	Transliterate(text string) string
}

// SearchResult is a shallow copy of a matched node annotated with which
// fields satisfied the query.
type SearchResult struct {
	Node
	NameMatch        bool `json:"name_match,omitempty"`
	DescriptionMatch bool `json:"description_match,omitempty"`
	URLMatch         bool `json:"url_match,omitempty"`
}

// Search walks every descendant of the tree's top-level nodes and returns
// the ones matching the query. The query must already be trimmed and
// lower-cased; empty queries return nil. Result order is traversal order
// and is not part of the contract.
//
// Name and description match literally or phonetically; URLs match
// literally only.
func (t *Tree) Search(query string, tr Transliterator) []SearchResult {
	if t == nil || t.Root == nil || query == "" {
		return nil
	}

	trQuery := ""
	if tr != nil {
		trQuery = tr.Transliterate(query)
	}

	var results []SearchResult
	stack := append([]*Node(nil), t.Root.Children...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nameMatch := n.Name != "" && fieldMatches(n.Name, query, trQuery, tr)
		descMatch := n.Description != "" && fieldMatches(n.Description, query, trQuery, tr)
		urlMatch := n.URL != "" && strings.Contains(strings.ToLower(n.URL), query)

		if nameMatch || descMatch || urlMatch {
			results = append(results, SearchResult{
				Node:             *n,
				NameMatch:        nameMatch,
				DescriptionMatch: descMatch,
				URLMatch:         urlMatch,
			})
		}
		stack = append(stack, n.Children...)
	}
	return results
}

// fieldMatches applies the three-way matching rule: the field contains the
// query literally, the field's transliteration contains the query, or the
// field's transliteration contains the query's transliteration. The last
// rule lets "beijing" match native-script text regardless of how the
// phonetic rendering segments.
func fieldMatches(value, query, trQuery string, tr Transliterator) bool {
	if strings.Contains(strings.ToLower(value), query) {
		return true
	}
	if tr == nil {
		return false
	}
	trValue := tr.Transliterate(value)
	if strings.Contains(trValue, query) {
		return true
	}
	return trQuery != "" && strings.Contains(trValue, trQuery)
}

// Highlight wraps the portions of text matching the query in <mark> tags,
// using the same literal and phonetic rules as Search so highlighted output
// stays consistent with result membership. Text is returned unchanged when
// neither rule matches, or when text or query is empty.
func Highlight(text, query string, tr Transliterator) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if text == "" || q == "" {
		return text
	}

	if strings.Contains(strings.ToLower(text), q) {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(strings.TrimSpace(query)))
		return re.ReplaceAllString(text, "<mark>$0</mark>")
	}
	if tr == nil {
		return text
	}

	start, end, ok := phoneticSpan(text, q, tr)
	if !ok {
		if trQuery := tr.Transliterate(q); trQuery != "" && trQuery != q {
			start, end, ok = phoneticSpan(text, trQuery, tr)
		}
	}
	if !ok {
		return text
	}

	runes := []rune(text)
	return string(runes[:start]) + "<mark>" + string(runes[start:end]) + "</mark>" + string(runes[end:])
}

// phoneticSpan locates the rune span of text whose concatenated per-rune
// transliteration contains q, so a phonetic match can be highlighted at the
// characters that produced it. Returns [start, end) rune indices.
func phoneticSpan(text, q string, tr Transliterator) (int, int, bool) {
	runes := []rune(text)
	offsets := make([]int, 0, len(runes)+1)
	var concat strings.Builder
	for _, r := range runes {
		offsets = append(offsets, concat.Len())
		concat.WriteString(tr.Transliterate(string(r)))
	}
	offsets = append(offsets, concat.Len())

	idx := strings.Index(concat.String(), q)
	if idx < 0 {
		return 0, 0, false
	}
	last := idx + len(q) - 1

	start, end := -1, -1
	for i := 0; i < len(runes); i++ {
		// Rune i produced bytes [offsets[i], offsets[i+1]).
		if start == -1 && offsets[i] <= idx && idx < offsets[i+1] {
			start = i
		}
		if offsets[i] <= last && last < offsets[i+1] {
			end = i + 1
		}
	}
	if start == -1 || end == -1 {
		return 0, 0, false
	}
	return start, end, true
}
