package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/registry"
	"github.com/aretw0/stenomods/pkg/runner"
)

// LookupResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type LookupResponse struct {
	Strokes    []string `json:"strokes" jsonschema_description:"The strokes that were looked up"`
	Applicable bool     `json:"applicable" jsonschema_description:"Whether any dictionary translated the strokes"`
	Dictionary string   `json:"dictionary,omitempty" jsonschema_description:"The dictionary that produced the output"`
	Output     string   `json:"output,omitempty" jsonschema_description:"The translation, e.g. {#control(tab)}"`
	Error      string   `json:"error,omitempty" jsonschema_description:"Why the strokes were not applicable"`
}

// Server wraps a dictionary registry and exposes it as an MCP Server.
type Server struct {
	dictionaries *registry.Registry
	logger       *slog.Logger
	mcpServer    *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reg *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		dictionaries: reg,
		logger:       logger,
		mcpServer:    server.NewMCPServer("stenomods-mcp", strings.TrimSpace(stenomods.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: lookup_stroke
	lookupTool := mcp.NewTool("lookup_stroke",
		mcp.WithDescription("Translate a steno entry into a modifier-key command. Strokes of a multi-stroke entry are joined with '/'."),
		mcp.WithString("stroke", mcp.Required(), mcp.Description("The entry to translate, e.g. 2R*G")),
		mcp.WithString("dictionary", mcp.Description("Restrict the lookup to one dictionary (optional)")),
		mcp.WithOutputSchema[LookupResponse](),
	)
	s.mcpServer.AddTool(lookupTool, mcp.NewStructuredToolHandler(s.handleLookup))

	// TOOL: explain_stroke
	s.mcpServer.AddTool(mcp.NewTool("explain_stroke",
		mcp.WithDescription("Show how an engine decomposes and resolves a stroke."),
		mcp.WithString("stroke", mcp.Required(), mcp.Description("The stroke to explain")),
		mcp.WithString("engine", mcp.Required(), mcp.Description("Engine name, e.g. number or ender")),
	), s.handleExplain)
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (LookupResponse, error) {
	stroke, _ := args["stroke"].(string)
	dictionary, _ := args["dictionary"].(string)

	entry, err := runner.SanitizeStroke(stroke)
	if err != nil {
		s.logger.Warn("MCP Lookup: Input rejected", "err", err, "size", len(stroke))
		return LookupResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	strokes := runner.SplitStrokes(entry)

	var (
		name string
		out  string
	)
	if dictionary != "" {
		dict, derr := s.dictionaries.Get(dictionary)
		if derr != nil {
			return LookupResponse{}, derr
		}
		name = dictionary
		out, err = dict.Lookup(ctx, strokes)
	} else {
		name, out, err = s.dictionaries.Resolve(ctx, strokes)
	}

	resp := LookupResponse{Strokes: strokes}
	switch {
	case err == nil:
		resp.Applicable = true
		resp.Dictionary = name
		resp.Output = out
	case domain.IsNotApplicable(err):
		resp.Error = err.Error()
	default:
		return LookupResponse{}, fmt.Errorf("lookup failed: %w", err)
	}
	return resp, nil
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stroke, err := request.RequireString("stroke")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	engine, err := request.RequireString("engine")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dict, err := s.dictionaries.Get(engine)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	explainer, ok := dict.(ports.Explainer)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("dictionary %s cannot explain lookups", engine)), nil
	}

	entry, err := runner.SanitizeStroke(stroke)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
	}

	res, err := explainer.Explain(ctx, runner.SplitStrokes(entry))
	payload := map[string]any{
		"applicable": err == nil,
		"resolution": res,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	jsonBytes, _ := json.Marshal(payload)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: stenomods://dictionaries
	s.mcpServer.AddResource(mcp.NewResource("stenomods://dictionaries", "Registered Dictionaries",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.dictionaries.Names())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "stenomods://dictionaries",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
