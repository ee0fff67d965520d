package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hamster-nav/hamsternav/internal/nav"
)

// nodeJSON is the wire shape of a single node. Children are not nested;
// the UI descends level by level, so each entry only reports whether it
// has any.
type nodeJSON struct {
	ID          string   `json:"id"`
	ParentID    string   `json:"parent_id,omitempty"`
	Name        string   `json:"name"`
	Kind        nav.Kind `json:"kind"`
	URL         string   `json:"url,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	SortOrder   int      `json:"sort_order"`
	HasChildren bool     `json:"has_children"`
}

func toNodeJSON(n *nav.Node) nodeJSON {
	return nodeJSON{
		ID:          n.ID,
		ParentID:    n.ParentID,
		Name:        n.Name,
		Kind:        n.Kind,
		URL:         n.URL,
		Icon:        n.Icon,
		Description: n.Description,
		SortOrder:   n.SortOrder,
		HasChildren: len(n.Children) > 0,
	}
}

func toNodeList(nodes []*nav.Node) []nodeJSON {
	out := make([]nodeJSON, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeJSON(n))
	}
	return out
}

// handleChildren returns the ordered children of ?parent= (root when
// empty).
func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	parent := r.URL.Query().Get("parent")
	if parent != "" && parent != nav.RootID && s.mgr.GetNodeByID(parent) == nil {
		writeError(w, http.StatusNotFound, "unknown parent id")
		return
	}
	children := s.mgr.GetChildren(parent)
	writeJSON(w, http.StatusOK, map[string]any{
		"parent":   parent,
		"children": toNodeList(children),
	})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	node := s.mgr.GetNodeByID(id)
	if node == nil {
		writeError(w, http.StatusNotFound, "node not found")
		return
	}
	writeJSON(w, http.StatusOK, toNodeJSON(node))
}

// handlePath returns the root-to-node breadcrumb path.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	path := s.mgr.GetPathToNode(id)
	if path == nil {
		writeError(w, http.StatusNotFound, "node not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": toNodeList(path)})
}

// searchResultJSON is one entry in the /api/search response.
type searchResultJSON struct {
	nodeJSON
	NameMatch        bool   `json:"name_match,omitempty"`
	DescriptionMatch bool   `json:"description_match,omitempty"`
	URLMatch         bool   `json:"url_match,omitempty"`
	Highlighted      string `json:"highlighted,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := s.mgr.Search(query)

	out := make([]searchResultJSON, 0, len(results))
	for i := range results {
		res := &results[i]
		out = append(out, searchResultJSON{
			nodeJSON:         toNodeJSON(&res.Node),
			NameMatch:        res.NameMatch,
			DescriptionMatch: res.DescriptionMatch,
			URLMatch:         res.URLMatch,
			Highlighted:      s.mgr.Highlight(res.Name, query),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": out,
	})
}

// handleReload re-reads the row sources. On failure the previously loaded
// tree stays authoritative and the error is reported.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.reload == nil {
		writeError(w, http.StatusNotImplemented, "reload not configured")
		return
	}
	if err := s.reload(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	tree := s.mgr.Tree()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"nodes":  len(tree.Index) - 1,
	})
}
