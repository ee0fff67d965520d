package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hamster-nav/hamsternav/internal/nav"
)

// handleSearchBookmarks runs a keyword search over the bookmark tree.
func (s *Server) handleSearchBookmarks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	results := s.mgr.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText("No bookmarks matched. The data may not be loaded yet."), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// handleGetNode returns one node's details.
func (s *Server) handleGetNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	node := s.mgr.GetNodeByID(id)
	if node == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no node with id %q", id)), nil
	}

	return mcp.NewToolResultText(formatNode(node)), nil
}

// handleListChildren lists the ordered children of a category.
func (s *Server) handleListChildren(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parentID := request.GetString("parent_id", "")
	if parentID != "" && parentID != nav.RootID && s.mgr.GetNodeByID(parentID) == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no category with id %q", parentID)), nil
	}

	children := s.mgr.GetChildren(parentID)
	if len(children) == 0 {
		return mcp.NewToolResultText("No entries at this level."), nil
	}

	var b strings.Builder
	for _, c := range children {
		fmt.Fprintf(&b, "- %s\n", summarizeNode(c))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetPath returns the breadcrumb path for a node.
func (s *Server) handleGetPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	path := s.mgr.GetPathToNode(id)
	if path == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no node with id %q", id)), nil
	}

	names := make([]string, 0, len(path))
	for _, n := range path {
		names = append(names, n.Name)
	}
	return mcp.NewToolResultText(strings.Join(names, " > ")), nil
}

// formatSearchResults renders search hits as a readable list with the
// fields that matched.
func formatSearchResults(results []nav.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s):\n\n", len(results))
	for i := range results {
		res := &results[i]
		var matched []string
		if res.NameMatch {
			matched = append(matched, "name")
		}
		if res.DescriptionMatch {
			matched = append(matched, "description")
		}
		if res.URLMatch {
			matched = append(matched, "url")
		}
		fmt.Fprintf(&b, "- %s (matched: %s)\n", summarizeNode(&res.Node), strings.Join(matched, ", "))
	}
	return b.String()
}

func formatNode(n *nav.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\nname: %s\nkind: %s\n", n.ID, n.Name, n.Kind)
	if n.URL != "" {
		fmt.Fprintf(&b, "url: %s\n", n.URL)
	}
	if n.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", n.Description)
	}
	if n.IsFolder() {
		fmt.Fprintf(&b, "children: %d\n", len(n.Children))
	}
	return b.String()
}

func summarizeNode(n *nav.Node) string {
	if n.Kind == nav.KindLink {
		return fmt.Sprintf("%s [%s] %s", n.Name, n.ID, n.URL)
	}
	return fmt.Sprintf("%s/ [%s] (%d entries)", n.Name, n.ID, len(n.Children))
}
