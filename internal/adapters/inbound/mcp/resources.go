package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all ConfLint MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. conflint://report - aggregate validation report for the project
	s.AddResource(
		mcplib.NewResource(
			"conflint://report",
			"Validation Report",
			mcplib.WithResourceDescription("Aggregate validation report for every config file in the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	// 2. conflint://filetypes - detected type per visited file
	s.AddResource(
		mcplib.NewResource(
			"conflint://filetypes",
			"File Types",
			mcplib.WithResourceDescription("Mapping from file path to detected file type for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFileTypesResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newService().ValidateDirectory(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validate failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "conflint://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleFileTypesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newService().ValidateDirectory(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validate failed: %w", err)
		}

		data, err := json.MarshalIndent(report.FileTypes, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling file types: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "conflint://filetypes",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
