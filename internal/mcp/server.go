package mcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/runoshun/agentterm/internal/domain"
	"github.com/runoshun/agentterm/internal/usecase"
)

const logCategory = "mcp"

// Server wraps the MCP SDK server and registers agentterm tools.
type Server struct {
	server *sdk.Server
	launch *usecase.LaunchTerminal
	logger domain.Logger
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "agentterm")
	Version string // Server version
}

// NewServer creates a new MCP server with the launch_agent_terminal tool.
func NewServer(cfg *Config, launch *usecase.LaunchTerminal, logger domain.Logger) *Server {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		server: mcpServer,
		launch: launch,
		logger: logger,
	}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info(logCategory, "serving on stdio")
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves a single session over t. Useful for in-process hosts and tests.
func (s *Server) Connect(ctx context.Context, t sdk.Transport) (*sdk.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}
