// Package mcp exposes agentterm operations as MCP tools so a host
// application can invoke them as procedures.
package mcp

// ToolLaunchAgentTerminal is the name hosts use to open an agent terminal.
const ToolLaunchAgentTerminal = "launch_agent_terminal"

// LaunchAgentTerminalInput defines the input for launch_agent_terminal tool.
type LaunchAgentTerminalInput struct {
	Command string `json:"command" jsonschema:"shell command to run in the new terminal window after a short startup delay"`
}

// LaunchAgentTerminalOutput defines the output for launch_agent_terminal tool.
type LaunchAgentTerminalOutput struct {
	Message string `json:"message" jsonschema:"human-readable result message"`
}
