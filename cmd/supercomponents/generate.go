package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/supercomponents/internal/config"
	"github.com/jonathan/supercomponents/internal/metrics"
	"github.com/jonathan/supercomponents/internal/observability"
	"github.com/jonathan/supercomponents/internal/types"
	"github.com/jonathan/supercomponents/internal/workflow"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a design system from an inspiration",
	Long: `Runs the full workflow: analyze the inspiration -> generate tokens -> check contrast -> write principles ->
plan components -> write files.

Exactly one of --image, --url or --description is required. Configuration can be loaded from a JSON or YAML
file using --config. Command-line arguments override config file values, which override environment values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath    string
	genImage         string
	genURL           string
	genDescription   string
	genBrand         []string
	genIndustry      string
	genAudience      string
	genStyle         []string
	genColors        []string
	genAccessibility string
	genOutput        string
	genBypassA11y    bool
	genMockAI        bool
	genStream        bool
	genVerbose       bool
	genMetricsFile   string
	genLogLevel      string
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genImage, "image", "i", "", "Inspiration image URL")
	generateCommand.Flags().StringVarP(&genURL, "url", "u", "", "Inspiration website URL")
	generateCommand.Flags().StringVarP(&genDescription, "description", "d", "", "Text description of the desired design")
	generateCommand.Flags().StringSliceVarP(&genBrand, "brand", "b", nil, "Brand keywords (comma separated)")
	generateCommand.Flags().StringVar(&genIndustry, "industry", "", "Industry type, e.g. fintech")
	generateCommand.Flags().StringVar(&genAudience, "audience", "", "Target users")
	generateCommand.Flags().StringSliceVar(&genStyle, "style", nil, "Style preferences: minimal, modern, classic, playful, professional, bold, elegant")
	generateCommand.Flags().StringSliceVar(&genColors, "colors", nil, "Preferred colors (hex, comma separated)")
	generateCommand.Flags().StringVarP(&genAccessibility, "accessibility", "a", "", "Accessibility level: basic, enhanced or enterprise (default basic)")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (default ./design-system)")
	generateCommand.Flags().BoolVar(&genBypassA11y, "bypass-a11y-fail", false, "Write files even when contrast cannot be fixed")
	generateCommand.Flags().BoolVar(&genMockAI, "mock-ai", false, "Use a canned analysis instead of an AI provider")
	generateCommand.Flags().BoolVar(&genStream, "stream", false, "Stream the AI response as it arrives")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed summaries")
	generateCommand.Flags().StringVar(&genMetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	generateCommand.Flags().StringVar(&genLogLevel, "log-level", "", "Log level: debug, info, warn or error (defaults to LOG_LEVEL or info)")

	rootCmd.AddCommand(generateCommand)
}

// resolveGenerateConfig merges config file, flags, environment and defaults.
func resolveGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (only flags that were explicitly set)
	flags := cmd.Flags()
	if flags.Changed("image") {
		cfg.Image = genImage
	}
	if flags.Changed("url") {
		cfg.URL = genURL
	}
	if flags.Changed("description") {
		cfg.Description = genDescription
	}
	if flags.Changed("brand") {
		cfg.Brand = genBrand
	}
	if flags.Changed("industry") {
		cfg.Industry = genIndustry
	}
	if flags.Changed("audience") {
		cfg.Audience = genAudience
	}
	if flags.Changed("style") {
		cfg.Style = genStyle
	}
	if flags.Changed("colors") {
		cfg.Colors = genColors
	}
	if flags.Changed("accessibility") {
		cfg.Accessibility = genAccessibility
	}
	if flags.Changed("output") {
		cfg.Output = genOutput
	}
	if flags.Changed("bypass-a11y-fail") {
		cfg.BypassA11yFail = genBypassA11y
	}
	if flags.Changed("mock-ai") {
		cfg.MockAI = genMockAI
	}
	if flags.Changed("stream") {
		cfg.Stream = genStream
	}
	if flags.Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = genMetricsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = genLogLevel
	}

	// Step 3: Environment, then built-in defaults
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// Step 4: Validate
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Image == "" && cfg.URL == "" && cfg.Description == "" {
		return cfg, fmt.Errorf("one of --image, --url or --description must be provided (via flag or config)")
	}
	return cfg, nil
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		cfg:       cfg,
		logger:    observability.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()),
		collector: metrics.New(),
		out:       cmd.OutOrStdout(),
	}
	defer a.flushMetrics()

	return generate(ctx, a, cmd.ErrOrStderr())
}

// generate runs one workflow and prints the outcome.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func generate(ctx context.Context, a *app, errOut io.Writer) error {
	wf, err := a.buildWorkflow()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(a.out)
	opts := workflow.Options{
		BypassA11yFail: a.cfg.BypassA11yFail,
		Stream:         a.cfg.Stream,
	}
	if a.cfg.Stream {
		opts.OnChunk = func(chunk string) { fmt.Fprint(a.out, chunk) }
	}

	insp := a.cfg.Inspiration()
	result, err := wf.GenerateDesignSystem(ctx, insp, a.cfg.Output, opts)
	if a.cfg.Stream {
		fmt.Fprintln(a.out)
	}
	if err != nil {
		var a11yErr *workflow.AccessibilityError
		if errors.As(err, &a11yErr) {
			printer.PrintViolations(a11yErr.Violations)
		}
		return err
	}

	if a.cfg.Verbose {
		printer.PrintInsight(&types.AnalysisResult{Insights: result.Insights, Provider: result.Metadata.Provider})
		printer.PrintTokens(result.W3CTokens)
		printer.PrintViolations(result.Metadata.ContrastViolations)
		printer.PrintPrinciples(result.Principles)
		printer.PrintComponentPlan(result.ComponentPlan)
		printer.PrintFiles(a.cfg.Output, result.Metadata.Files)
	}

	for _, w := range result.Metadata.Warnings {
		fmt.Fprintf(errOut, "Warning: %s\n", w)
	}
	if result.Metadata.Duration > workflow.SoftBudget {
		fmt.Fprintf(errOut, "Warning: generation took %s (expected under %s)\n",
			result.Metadata.Duration.Round(time.Second), workflow.SoftBudget)
	}

	fmt.Fprintf(a.out, "\n✅ Design system generated in %s (%d files, %d principles, %d components, %s)\n",
		a.cfg.Output, len(result.Metadata.Files), len(result.Principles),
		result.ComponentPlan.TotalComponents, result.Metadata.Duration.Round(time.Millisecond))
	return nil
}
