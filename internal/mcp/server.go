package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"pay-assist/internal/assist"
	"pay-assist/internal/tools"

	"go.uber.org/zap"
)

// maxLineSize bounds a single JSON-RPC message.
const maxLineSize = 1 << 20

type ToolProvider interface {
	Tools() []tools.Tool
	Run(ctx context.Context, name string, args map[string]any) (any, error)
}

// Server speaks newline-delimited JSON-RPC 2.0 and exposes the toolkit as
// MCP tools.
type Server struct {
	tools   ToolProvider
	name    string
	version string
	logger  *zap.Logger
}

func NewServer(provider ToolProvider, version string, logger *zap.Logger) *Server {
	return &Server{
		tools:   provider,
		name:    "pay-assist",
		version: version,
		logger:  logger,
	}
}

// Run serves requests from r until EOF or ctx is done.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("Unparsable message", zap.Error(err))
			if err := s.write(w, &Response{JSONRPC: jsonRPCVersion, Error: &Error{Code: codeParseError, Message: "Parse error"}}); err != nil {
				return err
			}
			continue
		}

		if resp := s.handle(ctx, &req); resp != nil {
			if err := s.write(w, resp); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}

func (s *Server) handle(ctx context.Context, req *Request) *Response {
	switch req.Method {
	case "initialize":
		return s.result(req, InitializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
			Capabilities:    ServerCapabilities{Tools: &ToolsCapability{}},
		})
	case "notifications/initialized":
		return nil
	case "ping":
		return s.result(req, struct{}{})
	case "tools/list":
		return s.result(req, map[string]any{"tools": s.tools.Tools()})
	case "tools/call":
		return s.callTool(ctx, req)
	default:
		return s.errorResponse(req, codeMethodNotFound, "Method not found")
	}
}

func (s *Server) callTool(ctx context.Context, req *Request) *Response {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return s.errorResponse(req, codeInvalidParams, "Invalid params")
	}

	result, err := s.tools.Run(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("Tool call failed", zap.String("tool", params.Name), zap.Error(err))
		return s.result(req, CallToolResult{
			Content: []Content{{Type: "text", Text: errorText(err)}},
			IsError: true,
		})
	}

	text, err := json.Marshal(result)
	if err != nil {
		return s.result(req, CallToolResult{
			Content: []Content{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		})
	}
	return s.result(req, CallToolResult{Content: []Content{{Type: "text", Text: string(text)}}})
}

// errorText renders assist errors as their JSON payload so clients can read
// the kind and raw model output.
func errorText(err error) string {
	var ae *assist.Error
	if errors.As(err, &ae) {
		if b, mErr := json.Marshal(ae.Payload()); mErr == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

func (s *Server) result(req *Request, v any) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: req.ID, Result: v}
}

func (s *Server) errorResponse(req *Request, code int, msg string) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: req.ID, Error: &Error{Code: code, Message: msg}}
}

func (s *Server) write(w io.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
