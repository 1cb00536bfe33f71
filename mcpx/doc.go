// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package mcpx renders status errors as MCP tool results.
//
// MCP distinguishes protocol errors from tool execution errors. A tool that
// fails should return a result with IsError set so the model can see the
// failure. ToolResult builds that result from any error, and Handler adapts
// a tool handler so it can return httperr errors directly:
//
//	s.AddTool(tool, mcpx.Handler(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
//		return nil, httperr.NotFound.New(httperr.WithMessage("no such repository"))
//	}))
package mcpx
