package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/t4sanity/t4sanity/internal/application"
	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

// registerResources registers all sanity MCP resources on the given server.
func registerResources(s *server.MCPServer, scanRoot string) {
	// 1. t4sanity://rules - the rule catalog
	s.AddResource(
		mcplib.NewResource(
			"t4sanity://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Every registered sanity rule with id, name, severity, and fixability"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	// 2. t4sanity://datasets/{name} - per-dataset sanity result (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"t4sanity://datasets/{name}",
			"Dataset Sanity Result",
			mcplib.WithTemplateDescription("Sanity result for a specific dataset under the scan root"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleDatasetResource(scanRoot),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		rules := make([]domain.Rule, 0)
		for _, c := range sanity.Builtin().All() {
			rules = append(rules, c.Rule())
		}

		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "t4sanity://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleDatasetResource(scanRoot string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := filepath.Base(request.Params.URI)
		if name == "" || name == "." {
			return nil, fmt.Errorf("missing dataset name in %s", request.Params.URI)
		}

		result := newSanityService().CheckDataset(filepath.Join(scanRoot, name), application.RunOptions{})
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
