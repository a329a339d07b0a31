package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/internal/logging"
	"github.com/aretw0/dectab/internal/presentation/markdown"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/ports"
	"github.com/aretw0/dectab/pkg/recognizer"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const tablesURI = "dectab://tables"

// Server exposes decision table recognition as an MCP server.
type Server struct {
	recognizer ports.TableRecognizer
	store      ports.TableStore
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// Option configures the MCP server.
type Option func(*Server)

// WithLogger sets the logger used by tool handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance. A nil store leaves out the
// storage tools and resources.
func NewServer(rec ports.TableRecognizer, store ports.TableStore, opts ...Option) *Server {
	s := &Server{
		recognizer: rec,
		store:      store,
		mcpServer: server.NewMCPServer("dectab-mcp", strings.TrimSpace(dectab.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.registerTools()
	if s.store != nil {
		s.registerStoreTools()
		s.registerResources()
	}
	return s
}

// MCPServer returns the underlying mcp-go server.
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
		ReadHeaderTimeout: 10 * time.Second,
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type recognizeArgs struct {
	Text   string `mapstructure:"text"`
	Format string `mapstructure:"format"`
}

type scanArgs struct {
	Text  string `mapstructure:"text"`
	Layer string `mapstructure:"layer"`
}

type storeArgs struct {
	Text string `mapstructure:"text"`
	ID   string `mapstructure:"id"`
}

type idArgs struct {
	ID string `mapstructure:"id"`
}

// decodeArgs copies the tool arguments into a typed struct.
func decodeArgs(request mcp.CallToolRequest, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(request.GetArguments())
}

func (s *Server) registerTools() {
	recognizeTool := mcp.NewTool("recognize_decision_table",
		mcp.WithDescription("Recognize a decision table drawn with box-drawing characters and return its structure."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The decision table text, including the optional name line above it")),
		mcp.WithString("format", mcp.Enum("json", "markdown"), mcp.Description("Text rendering of the result (default json)")),
		mcp.WithOutputSchema[domain.DecisionTable](),
	)
	s.mcpServer.AddTool(recognizeTool, s.handleRecognize)

	scanTool := mcp.NewTool("scan_canvas",
		mcp.WithDescription("Scan the table text and show one layer of the character canvas, or all layers."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The decision table text")),
		mcp.WithString("layer", mcp.Enum("text", "thin", "body", "grid"), mcp.Description("Layer to display (all when omitted)")),
	)
	s.mcpServer.AddTool(scanTool, s.handleScan)
}

func (s *Server) registerStoreTools() {
	s.mcpServer.AddTool(mcp.NewTool("store_decision_table",
		mcp.WithDescription("Recognize a decision table and keep it in the table store."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The decision table text")),
		mcp.WithString("id", mcp.Description("Identifier to store the table under (generated when omitted)")),
		mcp.WithOutputSchema[domain.StoredTable](),
	), s.handleStore)

	s.mcpServer.AddTool(mcp.NewTool("get_decision_table",
		mcp.WithDescription("Load a stored decision table by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Table identifier")),
		mcp.WithOutputSchema[domain.StoredTable](),
	), s.handleGet)

	s.mcpServer.AddTool(mcp.NewTool("list_decision_tables",
		mcp.WithDescription("List the ids of stored decision tables."),
	), s.handleList)
}

func (s *Server) handleRecognize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args recognizeArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	dt, err := s.recognizer.Recognize(ctx, args.Text)
	if err != nil {
		s.logger.Warn("MCP Recognize: Table rejected", "error", err, "size", len(args.Text))
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch args.Format {
	case "", "json":
		data, err := json.Marshal(dt)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultStructured(dt, string(data)), nil
	case "markdown":
		return mcp.NewToolResultStructured(dt, markdown.Generate(dt)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", args.Format)), nil
	}
}

func (s *Server) handleScan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args scanArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	layers := recognizer.Layers
	if args.Layer != "" {
		layer, err := recognizer.ParseLayer(args.Layer)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		layers = []recognizer.Layer{layer}
	}

	c, err := s.recognizer.Scan(ctx, args.Text)
	if err != nil {
		s.logger.Warn("MCP Scan: Canvas rejected", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	for i, layer := range layers {
		if i > 0 {
			buf.WriteString("\n")
		}
		c.DisplayLayer(&buf, layer)
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args storeArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	dt, err := s.recognizer.Recognize(ctx, args.Text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st := &domain.StoredTable{
		ID:        args.ID,
		Source:    args.Text,
		Table:     dt,
		CreatedAt: time.Now().UTC(),
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if err := s.store.Save(ctx, st); err != nil {
		s.logger.Error("MCP Store: Save failed", "error", err, "id", st.ID)
		return nil, fmt.Errorf("save failed: %w", err)
	}
	return mcp.NewToolResultStructured(st, st.ID), nil
}

func (s *Server) handleGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args idArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	st, err := s.store.Load(ctx, args.ID)
	if errors.Is(err, domain.ErrTableNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("table %q not found", args.ID)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultStructured(st, string(data)), nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list failed: %w", err)
	}
	return mcp.NewToolResultText(strings.Join(ids, "\n")), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(tablesURI, "Stored decision tables",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		if ids == nil {
			ids = []string{}
		}
		jsonBytes, _ := json.Marshal(ids)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      tablesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(tablesURI+"/{id}", "Stored decision table",
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := strings.TrimPrefix(request.Params.URI, tablesURI+"/")
		st, err := s.store.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %q: %w", id, err)
		}
		jsonBytes, _ := json.Marshal(st)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
