package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/supercomponents/internal/config"
	"github.com/jonathan/supercomponents/internal/mcpserver"
	"github.com/jonathan/supercomponents/internal/metrics"
	"github.com/jonathan/supercomponents/internal/observability"
)

var mcpCommand = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generator as MCP tools over stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout exposing generate_design_system and
validate_contrast. Logs go to stderr.`,
	RunE: runMCPCmd,
}

var (
	mcpOutput string
	mcpMockAI bool
)

func init() {
	mcpCommand.Flags().StringVarP(&mcpOutput, "output", "o", "", "Default output directory for generate_design_system")
	mcpCommand.Flags().BoolVar(&mcpMockAI, "mock-ai", false, "Use a canned analysis instead of an AI provider")
	rootCmd.AddCommand(mcpCommand)
}

func runMCPCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{Output: mcpOutput, MockAI: mcpMockAI}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := &app{
		cfg:       cfg,
		logger:    observability.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()),
		collector: metrics.New(),
		// stdout carries the protocol
		out: io.Discard,
	}
	wf, err := a.buildWorkflow()
	if err != nil {
		return err
	}

	mcpserver.Version = version
	a.logger.Info("serving MCP tools on stdio", "output", cfg.Output)
	return mcpserver.New(wf, cfg.Output).ServeStdio()
}
