// Package pinyin provides the phonetic transliteration provider used for
// searching Chinese text by romanized pronunciation.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Provider transliterates text to toneless pinyin. It implements
// nav.Transliterator.
type Provider struct {
	args gopinyin.Args
}

// New returns a Provider. Han characters render as toneless pinyin
// syllables; everything else passes through before the final reduction to
// lower-case letters and digits.
func New() *Provider {
	args := gopinyin.NewArgs()
	args.Fallback = func(r rune, _ gopinyin.Args) []string {
		return []string{string(r)}
	}
	return &Provider{args: args}
}

// Transliterate renders text as a lower-cased string of letters and
// digits: pinyin syllables for Han characters, other characters kept when
// alphanumeric and dropped otherwise. "北京 Go" becomes "beijinggo".
func (p *Provider) Transliterate(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, syllables := range gopinyin.Pinyin(text, p.args) {
		if len(syllables) == 0 {
			continue
		}
		for _, r := range strings.ToLower(syllables[0]) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
