package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// LoggingMiddleware logs every incoming request with its duration. Failed
// requests log at error level.
func LoggingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()
			result, err := next(ctx, method, req)

			attrs := append(requestAttrs(req),
				slog.String("method", method),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			level, msg := slog.LevelInfo, "request handled"
			if err != nil {
				level, msg = slog.LevelError, "request failed"
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			slog.LogAttrs(ctx, level, msg, attrs...)

			return result, err
		}
	}
}

// requestAttrs names the tool or resource a request targets.
func requestAttrs(req sdkmcp.Request) []slog.Attr {
	switch r := req.(type) {
	case *sdkmcp.CallToolRequest:
		if r.Params != nil {
			return []slog.Attr{slog.String("tool", r.Params.Name)}
		}
	case *sdkmcp.ReadResourceRequest:
		if r.Params != nil {
			return []slog.Attr{slog.String("uri", r.Params.URI)}
		}
	case *sdkmcp.GetPromptRequest:
		if r.Params != nil {
			return []slog.Attr{slog.String("prompt", r.Params.Name)}
		}
	}
	return nil
}
