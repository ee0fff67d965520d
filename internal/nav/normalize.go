package nav

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hamster-nav/hamsternav/internal/rows"
)

// Normalizer converts raw field-map rows into canonical nodes. It handles
// two schema variants: pre-split category/site rows, and combined rows that
// inline up to five levels of category names per bookmark.
//
// Normalization is best-effort by policy: malformed numbers fall back to
// DefaultSortOrder, invalid URLs leave the icon empty, and absent columns
// read as empty strings. A row is only skipped when it is hidden or carries
// no usable content at all.
type Normalizer struct {
	tr Transliterator
}

// NewNormalizer returns a normalizer. tr is optional; when present it is
// used to romanize names during id synthesis, matching the ids the upstream
// data manager generates.
func NewNormalizer(tr Transliterator) *Normalizer {
	return &Normalizer{tr: tr}
}

// maxCategoryDepth is the deepest nesting a combined row can express.
const maxCategoryDepth = 5

// Categories normalizes category rows (columns: id, parent, name,
// sort_order) into folder nodes. Rows without a name are dropped.
func (nz *Normalizer) Categories(rs []rows.Row) []*Node {
	alloc := nz.newIDAlloc(rs)
	nodes := make([]*Node, 0, len(rs))
	for _, r := range rs {
		name := r.First("name", "title")
		if name == "" {
			continue
		}
		id := r.Get("id")
		if id == "" {
			id = alloc.synth(name)
		}
		nodes = append(nodes, &Node{
			ID:        id,
			ParentID:  r.First("parent", "parent_id"),
			Name:      name,
			Kind:      KindFolder,
			SortOrder: r.Int("sort_order", DefaultSortOrder),
		})
	}
	return nodes
}

// Sites normalizes site rows (columns: id, title, url, category, icon,
// description, sort_order, visible) into link nodes. A row whose visible
// column is present and not "1" is excluded; an absent column means
// visible. Rows without a title are dropped.
func (nz *Normalizer) Sites(rs []rows.Row) []*Node {
	alloc := nz.newIDAlloc(rs)
	nodes := make([]*Node, 0, len(rs))
	for _, r := range rs {
		if v := r.Get("visible"); v != "" && v != "1" {
			continue
		}
		title := r.First("title", "name")
		if title == "" {
			continue
		}
		link := r.Get("url")
		id := r.Get("id")
		if id == "" {
			id = alloc.synth(title + " " + link)
		}
		nodes = append(nodes, &Node{
			ID:          id,
			ParentID:    r.First("category", "parent", "parent_id"),
			Name:        title,
			Kind:        KindLink,
			URL:         link,
			Icon:        deriveIcon(r.Get("icon"), link),
			Description: r.Get("description"),
			SortOrder:   r.Int("sort_order", DefaultSortOrder),
		})
	}
	return nodes
}

// Combined normalizes rows that inline their category path (columns:
// category1..category5, title, url, icon, description, sort_order,
// visible). One folder node is synthesized per unique category-path
// prefix; the same path recurring across rows reuses the same node and id.
func (nz *Normalizer) Combined(rs []rows.Row) []*Node {
	alloc := nz.newIDAlloc(rs)
	folders := make(map[string]*Node)
	var nodes []*Node

	for _, r := range rs {
		if v := r.Get("visible"); v != "" && v != "1" {
			continue
		}

		parentID := ""
		var path []string
		for level := 1; level <= maxCategoryDepth; level++ {
			name := r.Get(fmt.Sprintf("category%d", level))
			if name == "" {
				break
			}
			path = append(path, name)
			key := strings.Join(path, "/")
			folder, ok := folders[key]
			if !ok {
				folder = &Node{
					ID:        alloc.synth(strings.Join(path, " ")),
					ParentID:  parentID,
					Name:      name,
					Kind:      KindFolder,
					SortOrder: DefaultSortOrder,
				}
				folders[key] = folder
				nodes = append(nodes, folder)
			}
			parentID = folder.ID
		}

		title := r.First("title", "name")
		if title == "" {
			continue
		}
		link := r.Get("url")
		id := r.Get("id")
		if id == "" {
			id = alloc.synth(title + " " + link)
		}
		nodes = append(nodes, &Node{
			ID:          id,
			ParentID:    parentID,
			Name:        title,
			Kind:        KindLink,
			URL:         link,
			Icon:        deriveIcon(r.Get("icon"), link),
			Description: r.Get("description"),
			SortOrder:   r.Int("sort_order", DefaultSortOrder),
		})
	}
	return nodes
}

// deriveIcon returns the explicit icon when set, otherwise the conventional
// favicon path at the URL's origin. Invalid URLs yield an empty icon rather
// than an error.
func deriveIcon(icon, link string) string {
	if icon != "" {
		return icon
	}
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/favicon.ico"
}

// idAlloc hands out synthesized ids that are unique within one
// normalization pass and deterministic for a given input sequence.
type idAlloc struct {
	tr    Transliterator
	taken map[string]bool
	seq   int
}

// newIDAlloc seeds the allocator with every explicit id in the input so
// synthesized ids never collide with supplied ones.
func (nz *Normalizer) newIDAlloc(rs []rows.Row) *idAlloc {
	a := &idAlloc{tr: nz.tr, taken: make(map[string]bool)}
	for _, r := range rs {
		if id := r.Get("id"); id != "" {
			a.taken[id] = true
		}
	}
	return a
}

// synth derives an id from base: romanized when a transliterator is
// available, reduced to ascii letters and digits, with a numeric suffix on
// collision. Bases with no usable characters fall back to a sequence id.
func (a *idAlloc) synth(base string) string {
	slug := a.slug(base)
	if slug == "" {
		a.seq++
		slug = fmt.Sprintf("n%d", a.seq)
	}
	if !a.taken[slug] {
		a.taken[slug] = true
		return slug
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !a.taken[candidate] {
			a.taken[candidate] = true
			return candidate
		}
	}
}

const maxSlugLen = 48

func (a *idAlloc) slug(s string) string {
	if a.tr != nil {
		s = a.tr.Transliterate(s)
	}
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= maxSlugLen {
				break
			}
		}
	}
	return b.String()
}
