package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/runoshun/agentterm/internal/usecase"
)

// registerTools registers all agentterm tools with the MCP server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolLaunchAgentTerminal,
		Description: "Open a new visible terminal window and run a shell command in it after a 2 second startup delay",
	}, s.handleLaunchAgentTerminal)
}

// handleLaunchAgentTerminal implements the launch_agent_terminal tool.
// A returned error becomes a tool error whose text is the failure message.
func (s *Server) handleLaunchAgentTerminal(ctx context.Context, _ *sdk.CallToolRequest, args LaunchAgentTerminalInput) (_ *sdk.CallToolResult, _ LaunchAgentTerminalOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.auditTool(ToolLaunchAgentTerminal, start, retErr)
	}()

	out, err := s.launch.Execute(ctx, usecase.LaunchTerminalInput{Command: args.Command})
	if err != nil {
		return nil, LaunchAgentTerminalOutput{}, err
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: out.Message}},
	}, LaunchAgentTerminalOutput{Message: out.Message}, nil
}

// auditTool logs one tool invocation with its duration and outcome.
func (s *Server) auditTool(tool string, start time.Time, err error) {
	ms := time.Since(start).Milliseconds()
	if err != nil {
		s.logger.Warn(logCategory, fmt.Sprintf("%s error in %dms: %v", tool, ms, err))
		return
	}
	s.logger.Info(logCategory, fmt.Sprintf("%s ok in %dms", tool, ms))
}
