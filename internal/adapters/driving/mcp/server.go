package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fzz/internal/logger"
)

// DefaultVersion is reported when no version is configured.
const DefaultVersion = "dev"

// instructions tells clients how to use the server.
const instructions = `fzz ranks candidate lines against a short query, best match first.
Call "rank" with items (or delimited text) and a query; read fzz://options
for the defaults applied when an option is omitted.`

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithVersion sets the version advertised to clients.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// Server exposes fzz ranking over the Model Context Protocol.
type Server struct {
	ports   *Ports
	version string
	server  *mcp.Server
}

// NewServer creates a server with the rank tool and options resource registered.
func NewServer(ports *Ports, opts ...ServerOption) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports, version: DefaultVersion}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{Name: "fzz", Version: s.version},
		&mcp.ServerOptions{Instructions: instructions},
	)
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Version returns the version advertised to clients.
func (s *Server) Version() string {
	return s.version
}

// Run serves over stdio until ctx ends or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp: fzz %s serving over stdio", s.version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves streamable HTTP on addr until ctx ends.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr: addr,
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.server
		}, nil),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: http shutdown: %v", err)
		}
	}()

	logger.Info("mcp: fzz %s serving over http on %s", s.version, addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp http: %w", err)
	}
	<-stopped
	return nil
}
