package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/n2ns/ggMCP4VSCode/internal/config"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
	"github.com/n2ns/ggMCP4VSCode/internal/tools"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

const (
	// Name and Version identify the server in initialize responses.
	Name    = "ggMCP4VSCode"
	Version = "0.2.1"

	// protocolVersion is the MCP revision this server speaks.
	protocolVersion = "2025-03-26"
)

// supportedProtocolVersions are accepted from the Mcp-Protocol-Version
// header; requests without the header are served at protocolVersion.
var supportedProtocolVersions = map[string]bool{
	"2024-11-05": true,
	"2025-03-26": true,
	"2025-06-18": true,
}

// Server is the Streamable HTTP MCP server for one workspace.
type Server struct {
	config     *config.Config
	registry   *tools.Registry
	dispatcher *Dispatcher
	ws         workspace.Binding
	httpServer *http.Server
	startedAt  time.Time
	port       int
}

// NewServer creates an MCP server over the given workspace binding.
func NewServer(cfg *config.Config, ws workspace.Binding, registry *tools.Registry, dispatcher *Dispatcher) *Server {
	return &Server{
		config:     cfg,
		registry:   registry,
		dispatcher: dispatcher,
		ws:         ws,
		startedAt:  time.Now(),
	}
}

// Routes creates the HTTP router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// MCP endpoint
	r.Post("/mcp", s.handleMCPPost)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})

	// Server status
	r.Get("/status", s.handleStatus)

	return r
}

// Start binds the first free port in the configured range and serves until
// Shutdown. The chosen port is available via Port once Start has returned
// or the server is serving.
func (s *Server) Start() error {
	ln, port, err := Listen(s.config.Server.Host, s.config.Server.PortStart, s.config.Server.PortEnd)
	if err != nil {
		return err
	}
	s.port = port

	s.httpServer = &http.Server{
		Handler:     s.Routes(),
		ReadTimeout: 30 * time.Second,
	}

	log.Info().
		Str("host", s.config.Server.Host).
		Int("port", port).
		Str("workspace", s.ws.Root()).
		Msg("Starting MCP server")
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Port reports the port chosen by Start.
func (s *Server) Port() int {
	return s.port
}

// handleMCPPost handles POST /mcp (JSON-RPC requests)
func (s *Server) handleMCPPost(w http.ResponseWriter, r *http.Request) {
	// Validate Origin header (DNS rebinding protection)
	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	// Validate protocol version when the client states one
	if v := r.Header.Get("Mcp-Protocol-Version"); v != "" && !supportedProtocolVersions[v] {
		http.Error(w, "unsupported protocol version", http.StatusBadRequest)
		return
	}

	// Parse JSON-RPC request
	var req protocol.JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, nil, protocol.ParseError, "invalid JSON")
		return
	}

	// Validate JSON-RPC version
	if req.JSONRPC != protocol.Version {
		s.sendError(w, req.ID, protocol.InvalidRequest, "invalid jsonrpc version")
		return
	}

	// Notifications get no response body
	if req.IsNotification() {
		s.handleNotification(w, &req)
		return
	}

	s.handleJSONRPC(w, r, &req)
}

// handleNotification acknowledges client notifications without a response.
func (s *Server) handleNotification(w http.ResponseWriter, req *protocol.JSONRPCRequest) {
	switch req.Method {
	case "notifications/initialized":
		log.Debug().Msg("client completed initialization")
	default:
		log.Debug().Str("method", req.Method).Msg("ignoring unknown notification")
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleJSONRPC routes JSON-RPC requests to appropriate handlers
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request, req *protocol.JSONRPCRequest) {
	ctx := r.Context()

	switch req.Method {
	case "initialize":
		log.Info().Str("workspace", s.ws.Root()).Msg("client initializing")
		result := map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    Name,
				"version": Version,
			},
		}
		s.sendResult(w, req.ID, result)

	case "tools/list":
		result := map[string]any{
			"tools": s.registry.List(),
		}
		s.sendResult(w, req.ID, result)

	case "tools/call":
		var callReq tools.CallRequest
		if err := json.Unmarshal(req.Params, &callReq); err != nil {
			s.sendError(w, req.ID, protocol.InvalidParams, "invalid tool call parameters")
			return
		}
		if callReq.Name == "" {
			s.sendError(w, req.ID, protocol.InvalidParams, "tool name is required")
			return
		}

		result, followUps := s.dispatcher.Dispatch(ctx, callReq.Name, callReq.Arguments, r.URL.Path)
		s.sendResult(w, req.ID, result)

		// Follow-up tasks run once the response is on its way.
		if len(followUps) > 0 {
			go s.dispatcher.RunFollowUps(callReq.Name, followUps)
		}

	case "ping":
		s.sendResult(w, req.ID, map[string]any{"status": "ok"})

	default:
		s.sendError(w, req.ID, protocol.MethodNotFound, "method not found: "+req.Method)
	}
}

// StatusResponse is the GET /status payload.
type StatusResponse struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	WorkspaceRoot string `json:"workspaceRoot"`
	ToolCount     int    `json:"toolCount"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Port          int    `json:"port"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Name:          Name,
		Version:       Version,
		WorkspaceRoot: s.ws.Root(),
		ToolCount:     s.registry.Len(),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Port:          s.port,
	})
}

// validateOrigin checks browser-originated requests against the allowlist.
// Requests without an Origin header (editors, CLIs, server-to-server) and
// local origins are always accepted.
func (s *Server) validateOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if isLocalOrigin(origin) {
		return true
	}

	for _, allowed := range s.config.Server.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}

	log.Warn().
		Str("origin", origin).
		Strs("allowedOrigins", s.config.Server.AllowedOrigins).
		Msg("Origin not in allowlist")
	return false
}

// isLocalOrigin reports whether origin points at this machine.
func isLocalOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// Helper functions
func (s *Server) sendResult(w http.ResponseWriter, id json.RawMessage, result any) {
	resp, err := protocol.NewResultResponse(id, result)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode result")
		s.sendError(w, id, protocol.InternalError, "failed to encode result")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func (s *Server) sendError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are still HTTP 200

	resp := protocol.NewErrorResponse(id, code, message, nil)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write error response")
	}
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode json response")
	}
}
