package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/madprops/el/internal/element"
	"github.com/madprops/el/internal/errors"
	"github.com/madprops/el/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	elements []element.Element
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance. A nil logger discards output.
func NewHandlers(elements []element.Element, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{elements: elements, logger: logger}
}

// LookupRequest represents the arguments for element_lookup.
type LookupRequest struct {
	Query string `json:"query"`
}

// ListRequest represents the arguments for element_list.
type ListRequest struct {
	Category string `json:"category,omitempty"`
	Phase    string `json:"phase,omitempty"`
	Period   int    `json:"period,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// HandleLookup handles the element_lookup tool call.
func (h *Handlers) HandleLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[LookupRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Lookup(h.elements, ops.LookupInput{Query: input.Query})
	if err != nil {
		h.logger.Debug("lookup failed", zap.String("query", input.Query), zap.Error(err))
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the element_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.elements, ops.ListInput{
		Category: input.Category,
		Phase:    input.Phase,
		Period:   input.Period,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var elErr *errors.ElError
	if stderrors.As(err, &elErr) {
		errorObj := map[string]any{
			"code":    elErr.Code,
			"message": elErr.Message,
			"status":  elErr.Status,
		}
		if elErr.Code != errors.ErrInternal && elErr.Details != nil {
			errorObj["details"] = elErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
// A payload that cannot be encoded becomes an INTERNAL error result.
func successResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return errorResult(errors.NewInternal(err)), nil
	}
	return result, nil
}
