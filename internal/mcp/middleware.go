package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// publicTools can be called without a session.
var publicTools = map[string]bool{
	"login": true,
}

// signInMiddleware answers tool calls with UNAUTHENTICATED until the cache
// holds a session. Protocol methods and public tools pass through.
func signInMiddleware(authenticated func() bool) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != "tools/call" || authenticated() {
				return next(ctx, method, req)
			}
			call, ok := req.(*sdkmcp.CallToolRequest)
			if !ok || call.Params == nil || publicTools[call.Params.Name] {
				return next(ctx, method, req)
			}
			return errorResult(errNotSignedIn), nil
		}
	}
}

func errorResult(apiErr *APIError) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: apiErr.Error()}},
	}
}
