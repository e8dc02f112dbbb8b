package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/schema"
	"github.com/dshills/codescore/internal/source"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	f := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the analyzer as an MCP tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := f.load()
			if err != nil {
				return err
			}
			return server.ServeStdio(newMCPServer(engine.New(prof)))
		},
	}
	f.register(cmd)
	return cmd
}

func newMCPServer(e *engine.Engine) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"codescore",
		version,
		server.WithToolCapabilities(false),
	)

	analyzeTool := mcp.NewTool("analyze_code",
		mcp.WithDescription("Score a JavaScript, JSX or Python source file for code quality and return recommendations"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The source code to analyze"),
		),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("File name with a .js, .jsx or .py extension"),
		),
		mcp.WithString("language",
			mcp.Description("javascript or python (default: derived from file_name)"),
		),
	)
	mcpServer.AddTool(analyzeTool, analyzeCodeHandler(e))

	return mcpServer
}

func analyzeCodeHandler(e *engine.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fileName, err := request.RequireString("file_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(code) > source.DefaultMaxBytes {
			return mcp.NewToolResultError(source.ErrTooLarge.Error()), nil
		}

		lang := analysis.Language(request.GetString("language", ""))
		if lang == "" {
			lang, _, err = source.Detect(fileName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		result, err := e.Analyze(code, fileName, lang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if errs := schema.Validate(result, e.Profile()); len(errs) > 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid analysis result: %s", errs[0])), nil
		}

		jsonData, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
