package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/supercomponents/internal/contrast"
	"github.com/jonathan/supercomponents/internal/tokens"
	"github.com/jonathan/supercomponents/internal/types"
)

var contrastCommand = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio of two colors",
	Long: `Computes the WCAG contrast ratio of a foreground and background hex color. When the pair fails, a
corrected foreground is suggested and the command exits non-zero.`,
	Args: cobra.ExactArgs(2),
	RunE: runContrastCmd,
}

var contrastLevel string

func init() {
	contrastCommand.Flags().StringVarP(&contrastLevel, "accessibility", "a", string(types.AccessibilityBasic), "Accessibility level: basic, enhanced (4.5:1) or enterprise (7:1)")
	rootCmd.AddCommand(contrastCommand)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runContrastCmd(cmd *cobra.Command, args []string) error {
	fg, ok := contrast.NormalizeHex(args[0])
	if !ok {
		return fmt.Errorf("invalid foreground color %q", args[0])
	}
	bg, ok := contrast.NormalizeHex(args[1])
	if !ok {
		return fmt.Errorf("invalid background color %q", args[1])
	}

	required := tokens.TargetRatioFor(types.AccessibilityLevel(contrastLevel))
	check := contrast.Check(fg, bg, required)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s: %.2f:1 (required %.1f:1)\n", fg, bg, check.Ratio, required)
	if check.Passes {
		fmt.Fprintln(out, "✅ passes")
		return nil
	}

	fix := contrast.Correct(fg, bg, required)
	if fix.Result.Passes {
		fmt.Fprintf(out, "Suggested foreground: %s (%.2f:1 after %d steps)\n", fix.Hex, fix.Result.Ratio, fix.Steps)
	} else {
		fmt.Fprintf(out, "No passing foreground within %d steps; best %s (%.2f:1)\n", contrast.MaxCorrectionSteps, fix.Hex, fix.Result.Ratio)
	}
	return fmt.Errorf("contrast %.2f:1 is below %.1f:1", check.Ratio, required)
}
