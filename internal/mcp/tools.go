package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchBookmarksTool defines the search_bookmarks MCP tool.
var searchBookmarksTool = mcp.NewTool("search_bookmarks",
	mcp.WithDescription("Search bookmarks and categories by keyword. Matches names, descriptions, and URLs; Chinese text also matches by pinyin."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search keyword"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

// getNodeTool defines the get_node MCP tool.
var getNodeTool = mcp.NewTool("get_node",
	mcp.WithDescription("Get a single bookmark or category by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Node id"),
	),
)

// listChildrenTool defines the list_children MCP tool.
var listChildrenTool = mcp.NewTool("list_children",
	mcp.WithDescription("List the ordered children of a category. Omit parent_id for the top level."),
	mcp.WithString("parent_id",
		mcp.Description("Category id; empty for the root"),
	),
)

// getPathTool defines the get_path MCP tool.
var getPathTool = mcp.NewTool("get_path",
	mcp.WithDescription("Get the breadcrumb path from the root to a node."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Node id"),
	),
)
