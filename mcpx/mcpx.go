// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mcpx

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stacklok/kithttp/httperr"
)

// ToolHandlerFunc has the signature of an mcp-go tool handler.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolResult renders err as an MCP tool error result. The text content is
// the error message and the structured content is the serialized record.
// Errors without a status are reported as an InternalServerError built
// against httperr.Default and their message is not exposed.
//
// ToolResult returns nil for a nil error.
func ToolResult(err error) *mcp.CallToolResult {
	if err == nil {
		return nil
	}

	se, ok := httperr.As(err)
	if !ok {
		se = httperr.InternalServerError.Make(httperr.WithCause(err))
	}

	result := mcp.NewToolResultError(se.Error())
	result.StructuredContent = map[string]any(se.Serialize())
	return result
}

// Handler wraps h so that status errors it returns are reported to the
// client as tool error results instead of protocol errors. Other errors are
// returned unchanged.
func Handler(h ToolHandlerFunc) ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := h(ctx, request)
		if err == nil {
			return result, nil
		}
		if _, ok := httperr.As(err); !ok {
			return result, err
		}
		return ToolResult(err), nil
	}
}
