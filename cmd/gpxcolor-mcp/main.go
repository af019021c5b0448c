package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gpxcolor/internal/adapters/gpxfile"
	mcpadapter "gpxcolor/internal/adapters/mcp"
)

func main() {
	repo := gpxfile.NewRepository()

	mcpServer := server.NewMCPServer(
		"gpxcolor-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("gpxcolor-mcp: %v", err)
	}
}
