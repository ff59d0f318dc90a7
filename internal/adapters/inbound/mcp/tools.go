package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/conflint/conflint/internal/adapters/outbound/config"
	"github.com/conflint/conflint/internal/adapters/outbound/detector"
	"github.com/conflint/conflint/internal/adapters/outbound/scanner"
	"github.com/conflint/conflint/internal/application"
	"github.com/conflint/conflint/internal/domain"
)

// registerTools registers all ConfLint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. conflint_validate_file
	s.AddTool(
		mcplib.NewTool("conflint_validate_file",
			mcplib.WithDescription("Validate a single config file (syntax plus format-specific structural checks)"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File path, relative to the project root"),
			),
			mcplib.WithString("type",
				mcplib.Description("Force a file type instead of auto-detecting: yaml, json, docker-compose, kubernetes, terraform"),
			),
		),
		handleValidateFile(projectPath),
	)

	// 2. conflint_validate_directory
	s.AddTool(
		mcplib.NewTool("conflint_validate_directory",
			mcplib.WithDescription("Validate every config file under a directory, recursively. Returns the aggregate report as JSON."),
			mcplib.WithString("path",
				mcplib.Description("Directory relative to the project root (defaults to the root itself)"),
			),
		),
		handleValidateDirectory(projectPath),
	)

	// 3. conflint_detect_type
	s.AddTool(
		mcplib.NewTool("conflint_detect_type",
			mcplib.WithDescription("Detect the semantic type of a file (yaml, json, docker-compose, kubernetes, terraform, markdown, text, python, shell, unknown)"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File path, relative to the project root"),
			),
		),
		handleDetectType(projectPath),
	)

	// 4. conflint_validate_schema
	s.AddTool(
		mcplib.NewTool("conflint_validate_schema",
			mcplib.WithDescription("Validate a JSON document against a JSON Schema file. Reports the first violation with its field path."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("JSON document path, relative to the project root"),
			),
			mcplib.WithString("schema",
				mcplib.Required(),
				mcplib.Description("JSON Schema file path, relative to the project root"),
			),
		),
		handleValidateSchema(projectPath),
	)
}

// newService creates the standard set of outbound adapters and the
// validation service.
func newService() *application.ValidateService {
	return application.NewValidateService(scanner.New(), detector.New(), config.New())
}

func handleValidateFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		typeArg, _ := request.GetArguments()["type"].(string)
		hint, err := domain.ParseFileType(typeArg)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := newService().ValidateFile(filepath.Join(projectPath, path), hint)
		return jsonResult(result)
	}
}

func handleValidateDirectory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir := projectPath
		if sub, _ := request.GetArguments()["path"].(string); sub != "" {
			dir = filepath.Join(projectPath, sub)
		}

		report, err := newService().ValidateDirectory(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleDetectType(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		detected := detector.New().Detect(filepath.Join(projectPath, path))

		type detection struct {
			Path string          `json:"path"`
			Type domain.FileType `json:"type"`
		}
		return jsonResult(detection{Path: path, Type: detected})
	}
}

func handleValidateSchema(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		schema, err := request.RequireString("schema")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := newService().ValidateSchema(
			filepath.Join(projectPath, path),
			filepath.Join(projectPath, schema),
		)
		return jsonResult(result)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
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
