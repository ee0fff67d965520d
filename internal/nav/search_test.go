package nav

import (
	"strings"
	"testing"
)

// fakeTransliterator romanizes a few Han characters and passes ascii
// letters/digits through, lower-cased. Tests stay independent of the real
// pinyin tables.
type fakeTransliterator struct{}

var fakeHan = map[rune]string{
	'北': "bei",
	'京': "jing",
	'书': "shu",
	'签': "qian",
}

func (fakeTransliterator) Transliterate(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if p, ok := fakeHan[r]; ok {
			b.WriteString(p)
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func searchTree() *Tree {
	return Build([]*Node{
		{ID: "dev", Name: "Development", Kind: KindFolder, SortOrder: 1},
		{ID: "cn", Name: "北京网站", Kind: KindFolder, SortOrder: 2},
		{ID: "s1", Name: "GitHub", ParentID: "dev", Kind: KindLink, URL: "https://github.com/", Description: "Code hosting"},
		{ID: "s2", Name: "Docs", ParentID: "dev", Kind: KindLink, URL: "https://docs.example/", Description: "search the docs"},
	}, DanglingAttachRoot)
}

func TestSearchLiteralMatchFlags(t *testing.T) {
	results := searchTree().Search("git", nil)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.ID != "s1" {
		t.Fatalf("expected s1, got %s", r.ID)
	}
	if !r.NameMatch || !r.URLMatch {
		t.Errorf("expected name and url match flags, got name=%v url=%v", r.NameMatch, r.URLMatch)
	}
	if r.DescriptionMatch {
		t.Error("description should not have matched")
	}
}

func TestSearchDescriptionMatch(t *testing.T) {
	results := searchTree().Search("hosting", nil)
	if len(results) != 1 || !results[0].DescriptionMatch {
		t.Fatalf("expected a description match on s1, got %+v", results)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if results := searchTree().Search("", fakeTransliterator{}); results != nil {
		t.Errorf("expected nil for empty query, got %d results", len(results))
	}
}

func TestSearchCompleteness(t *testing.T) {
	// Every node containing the query in any field must appear.
	results := searchTree().Search("docs", nil)
	found := map[string]bool{}
	for _, r := range results {
		found[r.ID] = true
	}
	if !found["s2"] {
		t.Errorf("expected s2 in results, got %v", found)
	}
}

func TestSearchPhonetic(t *testing.T) {
	tr := fakeTransliterator{}

	// Latin query against native-script name.
	results := searchTree().Search("beijing", tr)
	if len(results) != 1 || results[0].ID != "cn" {
		t.Fatalf("expected phonetic match on cn, got %+v", results)
	}
	if !results[0].NameMatch {
		t.Error("expected name match flag")
	}

	// Native-script query matches via the transliterated-query rule.
	results = searchTree().Search("北京", tr)
	if len(results) != 1 || results[0].ID != "cn" {
		t.Fatalf("expected native-script query to match, got %+v", results)
	}
}

func TestSearchPhoneticNotAppliedToURLs(t *testing.T) {
	tree := Build([]*Node{
		{ID: "f", Name: "F", Kind: KindFolder},
		{ID: "l", Name: "x", ParentID: "f", Kind: KindLink, URL: "https://北京.example/"},
	}, DanglingAttachRoot)

	// The URL contains the Han text; "beijing" must not match it
	// phonetically, only literally.
	if results := tree.Search("beijing", fakeTransliterator{}); len(results) != 0 {
		t.Errorf("phonetic rule must not apply to URLs, got %d results", len(results))
	}
}

func TestSearchDegradedWithoutTransliterator(t *testing.T) {
	// Literal matching still works with a nil provider.
	results := searchTree().Search("development", nil)
	if len(results) != 1 || results[0].ID != "dev" {
		t.Fatalf("expected literal match in degraded mode, got %+v", results)
	}
	// Phonetic-only matches are unavailable.
	if results := searchTree().Search("beijing", nil); len(results) != 0 {
		t.Errorf("expected no phonetic matches in degraded mode, got %d", len(results))
	}
}

func TestSearchResultIsCopy(t *testing.T) {
	tree := searchTree()
	results := tree.Search("github", nil)
	results[0].Name = "mutated"
	if tree.Node("s1").Name != "GitHub" {
		t.Error("mutating a result must not affect the tree")
	}
}

func TestHighlightLiteral(t *testing.T) {
	got := Highlight("Visit GitHub today", "github", nil)
	want := "Visit <mark>GitHub</mark> today"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlightNoMatchUnchanged(t *testing.T) {
	if got := Highlight("hello", "zzz", fakeTransliterator{}); got != "hello" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestHighlightEmptyInputsUnchanged(t *testing.T) {
	if got := Highlight("text", "", fakeTransliterator{}); got != "text" {
		t.Errorf("empty query: got %q", got)
	}
	if got := Highlight("", "query", fakeTransliterator{}); got != "" {
		t.Errorf("empty text: got %q", got)
	}
}

func TestHighlightPhoneticSpan(t *testing.T) {
	got := Highlight("我爱北京", "beijing", fakeTransliterator{})
	want := "我爱<mark>北京</mark>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlightEscapesRegexMeta(t *testing.T) {
	got := Highlight("a+b=c", "a+b", nil)
	want := "<mark>a+b</mark>=c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
