package nav

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hamster-nav/hamsternav/internal/rows"
)

// Manager owns the current tree and exposes the query surface the
// rendering layers (HTTP, MCP, CLI) consume. Loads rebuild the tree from
// scratch and swap the exposed reference atomically, so a reader racing a
// load sees either the previous complete tree or the next one, never a
// half-built state.
type Manager struct {
	tr     Transliterator
	policy DanglingPolicy
	log    *slog.Logger
	cache  *resultCache

	mu         sync.RWMutex
	tree       *Tree
	categories []*Node
	sites      []*Node
	combined   []*Node

	degradedOnce sync.Once
}

// Options configures a Manager. The zero value is usable: attach-to-root
// dangling policy, default cache size, no transliterator (literal-only
// search), and the default logger.
type Options struct {
	Transliterator Transliterator
	DanglingPolicy DanglingPolicy
	CacheSize      int
	Logger         *slog.Logger
}

// NewManager returns a Manager with an empty tree, ready to serve queries
// before any data has loaded.
func NewManager(opts Options) *Manager {
	policy := opts.DanglingPolicy
	if policy == "" {
		policy = DanglingAttachRoot
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		tr:     opts.Transliterator,
		policy: policy,
		log:    logger,
		cache:  newResultCache(opts.CacheSize),
	}
	m.tree = Build(nil, policy)
	return m
}

// LoadCategories normalizes category rows and rebuilds the tree. Site data
// loaded earlier is kept, so categories and sites can arrive in either
// order and in separate loads.
func (m *Manager) LoadCategories(rs []rows.Row) {
	nodes := NewNormalizer(m.tr).Categories(rs)
	m.mu.Lock()
	m.categories = nodes
	m.mu.Unlock()
	m.rebuild()
}

// LoadSites normalizes site rows and rebuilds the tree.
func (m *Manager) LoadSites(rs []rows.Row) {
	nodes := NewNormalizer(m.tr).Sites(rs)
	m.mu.Lock()
	m.sites = nodes
	m.mu.Unlock()
	m.rebuild()
}

// LoadCombined normalizes combined bookmark rows (inline category paths)
// and rebuilds the tree.
func (m *Manager) LoadCombined(rs []rows.Row) {
	nodes := NewNormalizer(m.tr).Combined(rs)
	m.mu.Lock()
	m.combined = nodes
	m.mu.Unlock()
	m.rebuild()
}

// rebuild assembles a fresh tree from all loaded node sets and swaps it
// in. The search cache is cleared afterwards since cached results refer to
// the replaced tree.
func (m *Manager) rebuild() {
	m.mu.Lock()
	nodes := make([]*Node, 0, len(m.categories)+len(m.combined)+len(m.sites))
	nodes = append(nodes, m.categories...)
	nodes = append(nodes, m.combined...)
	nodes = append(nodes, m.sites...)
	tree := Build(nodes, m.policy)
	m.tree = tree
	m.mu.Unlock()

	m.cache.clear()
	m.log.Info("tree rebuilt",
		"load_id", uuid.NewString(),
		"nodes", len(tree.Index)-1,
		"top_level", len(tree.Root.Children),
		"policy", string(m.policy))
}

// Tree returns the current tree snapshot. The returned tree is immutable.
func (m *Manager) Tree() *Tree {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree
}

// GetChildren returns the ordered children of the given parent. An empty
// id addresses the root.
func (m *Manager) GetChildren(parentID string) []*Node {
	return m.Tree().Children(parentID)
}

// GetNodeByID returns the node with the given id, or nil when unknown.
func (m *Manager) GetNodeByID(id string) *Node {
	return m.Tree().Node(id)
}

// GetPathToNode returns the root-to-node path for the given id, or nil
// when the id is unknown or unreachable.
func (m *Manager) GetPathToNode(id string) []*Node {
	return m.Tree().PathTo(id)
}

// Search runs a keyword search over the current tree. The query is trimmed
// and lower-cased first; empty queries return nil. Results of non-empty
// queries are cached under the normalized query string.
func (m *Manager) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if results, ok := m.cache.get(q); ok {
		return results
	}
	if m.tr == nil {
		m.degradedOnce.Do(func() {
			m.log.Warn("transliteration provider unavailable, phonetic search disabled")
		})
	}
	results := m.Tree().Search(q, m.tr)
	m.cache.put(q, results)
	return results
}

// Highlight marks query occurrences in text using the same matching rule
// as Search.
func (m *Manager) Highlight(text, query string) string {
	return Highlight(text, query, m.tr)
}
