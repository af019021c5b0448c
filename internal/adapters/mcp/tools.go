package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gpxcolor/internal/application/commands"
	"gpxcolor/internal/domain"
	"gpxcolor/internal/ports"
)

// RegisterTools adds all GPX tools to the MCP server.
func RegisterTools(s *server.MCPServer, repo ports.GPXRepository) {
	s.AddTool(colorizeTool(), colorizeHandler(repo))
	s.AddTool(previewTool(), previewHandler(repo))
	s.AddTool(inspectTool(), inspectHandler(repo))
	s.AddTool(rulesTool(), rulesHandler())
}

// --- colorize ---

func colorizeTool() mcp.Tool {
	return mcp.NewTool("colorize",
		mcp.WithDescription("Annotate waypoints of a GPX file with display colors based on name keywords. Writes a new <name>_color.gpx file next to the input; the input is never modified."),
		mcp.WithString("path",
			mcp.Description("Path to the GPX file to process"),
			mcp.Required(),
		),
	)
}

func colorizeHandler(repo ports.GPXRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewColorizeCommand(repo, path, domain.DefaultPalette())
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, m := range result.Report.Matches {
			fmt.Fprintf(&sb, " -> colored '%s' with %s (keyword: %s)\n", m.Name, m.Color, m.Keyword)
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Dry run: report which waypoints of a GPX file would be colored, without writing anything."),
		mcp.WithString("path",
			mcp.Description("Path to the GPX file to examine"),
			mcp.Required(),
		),
	)
}

func previewHandler(repo ports.GPXRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewPreviewCommand(repo, path, domain.DefaultPalette())
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Report.Matches) == 0 {
			return mcp.NewToolResultText(result.Message), nil
		}

		var sb strings.Builder
		for _, m := range result.Report.Matches {
			fmt.Fprintf(&sb, "%s  %s  (keyword: %s)\n", m.Color, m.Name, m.Keyword)
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Report waypoint, track, and route counts of a GPX file."),
		mcp.WithString("path",
			mcp.Description("Path to the GPX file"),
			mcp.Required(),
		),
	)
}

func inspectHandler(repo ports.GPXRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewInspectCommand(repo, path)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rules ---

func rulesTool() mcp.Tool {
	return mcp.NewTool("rules",
		mcp.WithDescription("List the built-in keyword-to-color table. Earlier rules win when several keywords match."),
	)
}

func rulesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, rule := range domain.DefaultPalette() {
			fmt.Fprintf(&sb, "%-10s %s\n", rule.Keyword, rule.Color)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
