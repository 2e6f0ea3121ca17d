// Package mcpserver exposes design-system generation and contrast checking as
// Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jonathan/supercomponents/internal/contrast"
	"github.com/jonathan/supercomponents/internal/types"
	"github.com/jonathan/supercomponents/internal/workflow"
)

// Version is reported to MCP clients.
var Version = "dev"

// Generator runs one generation.
type Generator interface {
	GenerateDesignSystem(ctx context.Context, insp types.UserInspiration, outputDir string, opts workflow.Options) (*types.GenerationResult, error)
}

// Server holds the tool handlers.
type Server struct {
	generator Generator
	outputDir string
}

// New creates tool handlers. outputDir is used when a call names none.
func New(generator Generator, outputDir string) *Server {
	return &Server{generator: generator, outputDir: outputDir}
}

// MCPServer builds an MCP server with every tool registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(
		"supercomponents",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	srv.AddTool(GenerateTool(), s.HandleGenerate)
	srv.AddTool(ContrastTool(), s.HandleContrast)
	return srv
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCPServer())
}

// GenerateTool describes generate_design_system.
func GenerateTool() mcp.Tool {
	return mcp.NewTool("generate_design_system",
		mcp.WithDescription("Generate design tokens, principles and a component plan from an inspiration. Supply exactly one of description, image_url or website_url."),
		mcp.WithString("description", mcp.Description("Text description of the desired look")),
		mcp.WithString("image_url", mcp.Description("URL of an inspiration image")),
		mcp.WithString("website_url", mcp.Description("URL of an inspiration website")),
		mcp.WithArray("brand_keywords", mcp.Description("Brand keywords"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("industry", mcp.Description("Industry type, e.g. fintech")),
		mcp.WithString("target_users", mcp.Description("Who the product is for")),
		mcp.WithString("accessibility",
			mcp.Description("WCAG ambition"),
			mcp.Enum(string(types.AccessibilityBasic), string(types.AccessibilityEnhanced), string(types.AccessibilityEnterprise)),
		),
		mcp.WithString("output_dir", mcp.Description("Directory to write the generated files to")),
		mcp.WithBoolean("bypass_a11y_fail", mcp.Description("Continue when contrast cannot be fixed")),
	)
}

// ContrastTool describes validate_contrast.
func ContrastTool() mcp.Tool {
	return mcp.NewTool("validate_contrast",
		mcp.WithDescription("Compute the WCAG contrast ratio of two colors and suggest a passing foreground."),
		mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground hex color")),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background hex color")),
		mcp.WithNumber("required_ratio", mcp.Description("Target ratio, 4.5 by default")),
	)
}

type generateSummary struct {
	RunID         string              `json:"runId"`
	OutputDir     string              `json:"outputDir"`
	Files         []string            `json:"files"`
	Principles    []string            `json:"principles"`
	ComponentPlan types.ComponentPlan `json:"componentPlan"`
	Warnings      []string            `json:"warnings,omitempty"`
}

// HandleGenerate runs generate_design_system. Failures are reported as tool
// errors so the client can show them.
func (s *Server) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	insp := types.UserInspiration{
		Description:   req.GetString("description", ""),
		ImageURL:      req.GetString("image_url", ""),
		WebsiteURL:    req.GetString("website_url", ""),
		BrandKeywords: req.GetStringSlice("brand_keywords", nil),
		IndustryType:  req.GetString("industry", ""),
		TargetUsers:   req.GetString("target_users", ""),
		Accessibility: types.AccessibilityLevel(req.GetString("accessibility", "")),
	}
	outputDir := req.GetString("output_dir", s.outputDir)

	result, err := s.generator.GenerateDesignSystem(ctx, insp, outputDir, workflow.Options{
		BypassA11yFail: req.GetBool("bypass_a11y_fail", false),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := generateSummary{
		RunID:         result.Metadata.RunID,
		OutputDir:     outputDir,
		Files:         result.Metadata.Files,
		ComponentPlan: result.ComponentPlan,
		Warnings:      result.Metadata.Warnings,
	}
	for _, p := range result.Principles {
		summary.Principles = append(summary.Principles, p.Title)
	}
	return jsonResult(summary)
}

type contrastReport struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Required   float64 `json:"required"`
	Passes     bool    `json:"passes"`
	Suggested  string  `json:"suggested,omitempty"`
	Steps      int     `json:"steps,omitempty"`
}

// HandleContrast runs validate_contrast.
func (s *Server) HandleContrast(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fgArg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bgArg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fg, ok := contrast.NormalizeHex(fgArg)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid foreground color %q", fgArg)), nil
	}
	bg, ok := contrast.NormalizeHex(bgArg)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid background color %q", bgArg)), nil
	}
	required := req.GetFloat("required_ratio", contrast.MinimumRatio)

	check := contrast.Check(fg, bg, required)
	report := contrastReport{
		Foreground: fg,
		Background: bg,
		Ratio:      check.Ratio,
		Required:   required,
		Passes:     check.Passes,
	}
	if !check.Passes {
		fix := contrast.Correct(fg, bg, required)
		report.Suggested = fix.Hex
		report.Steps = fix.Steps
	}
	return jsonResult(report)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
