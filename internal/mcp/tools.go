package mcp

import "github.com/mark3labs/mcp-go/mcp"

var lookupToolDef = mcp.NewTool("element_lookup",
	mcp.WithDescription("Look up one chemical element by name, symbol, or atomic number. "+
		"Numbers match exactly; names tolerate up to 3 typos."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Element name (e.g. \"oxygen\"), symbol (e.g. \"Fe\") or atomic number (e.g. \"8\")"),
	),
)

var listToolDef = mcp.NewTool("element_list",
	mcp.WithDescription("List elements ordered by atomic number, optionally filtered by category, phase, or period."),
	mcp.WithString("category", mcp.Description("Category filter, e.g. \"noble gas\" (case-insensitive)")),
	mcp.WithString("phase", mcp.Description("Phase filter: Gas, Liquid or Solid (case-insensitive)")),
	mcp.WithNumber("period", mcp.Description("Period filter, 1-7")),
	mcp.WithNumber("limit", mcp.Description("Max items to return (default 20, max 200)")),
	mcp.WithNumber("offset", mcp.Description("Items to skip (default 0)")),
)
