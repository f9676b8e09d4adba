package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/parser"
	"github.com/zhubert/canvas/internal/render"
	"github.com/zhubert/canvas/internal/viewport"
)

var (
	showLines  int
	showOffset int
	showWidth  int
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render a markdown file to the terminal once and exit",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&showLines, "lines", 0, "Number of lines to show (0 shows everything)")
	showCmd.Flags().IntVar(&showOffset, "offset", 0, "First line to show")
	showCmd.Flags().IntVar(&showWidth, "width", 100, "Render width in columns")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	doc := parser.Parse(string(content))
	r := render.New(showWidth)

	if showLines <= 0 {
		for _, line := range r.Render(doc) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	}

	// Seed the total so the requested offset survives clamping; the
	// renderer re-clamps against the real line count.
	vp := viewport.New(showLines, showOffset+showLines)
	vp.ScrollDown(showOffset)

	for _, line := range r.RenderViewport(doc, vp) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
