package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/t4sanity/t4sanity/internal/adapters/outbound/gitinfo"
	"github.com/t4sanity/t4sanity/internal/adapters/outbound/loader"
	"github.com/t4sanity/t4sanity/internal/application"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

// registerTools registers all sanity MCP tools on the given server.
func registerTools(s *server.MCPServer, scanRoot string) {
	// 1. t4sanity_scan
	s.AddTool(
		mcplib.NewTool("t4sanity_scan",
			mcplib.WithDescription("Run all sanity rules against every dataset under the scan root and return the results as JSON"),
			mcplib.WithString("exclude", mcplib.Description("Comma-separated rule ids or groups to exclude")),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as failures")),
			mcplib.WithBoolean("fix", mcplib.Description("Repair fixable violations in place")),
		),
		handleScan(scanRoot),
	)

	// 2. t4sanity_check_dataset
	s.AddTool(
		mcplib.NewTool("t4sanity_check_dataset",
			mcplib.WithDescription("Run all sanity rules against a single dataset directory"),
			mcplib.WithString("dataset",
				mcplib.Required(),
				mcplib.Description("Name of the dataset directory under the scan root"),
			),
			mcplib.WithNumber("revision", mcplib.Description("Dataset version to check (0 selects the latest)")),
		),
		handleCheckDataset(scanRoot),
	)
}

// newSanityService wires the standard outbound adapters.
func newSanityService() *application.SanityService {
	store := loader.New()
	return application.NewSanityService(store, store, gitinfo.New(), sanity.Builtin())
}

func handleScan(scanRoot string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		strict, _ := args["strict"].(bool)
		fix, _ := args["fix"].(bool)

		opts := application.RunOptions{Strict: strict, Fix: fix}
		if raw, _ := args["exclude"].(string); raw != "" {
			opts.Excludes = strings.Split(raw, ",")
		}

		svc := newSanityService()
		results, err := application.NewScanService(svc).Scan(ctx, scanRoot, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(results)
	}
}

func handleCheckDataset(scanRoot string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dataset, err := request.RequireString("dataset")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		revision, _ := request.GetArguments()["revision"].(float64)
		opts := application.RunOptions{Revision: int(revision)}
		result := newSanityService().CheckDataset(filepath.Join(scanRoot, dataset), opts)
		return jsonResult(result)
	}
}

// jsonResult returns a JSON-encoded content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
