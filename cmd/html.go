package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/htmlrender"
	"github.com/zhubert/canvas/internal/parser"
)

var htmlOutput string

var htmlCmd = &cobra.Command{
	Use:   "html <file>",
	Short: "Render a markdown file to a standalone HTML page",
	Long: `Renders a canvas markdown file to HTML. Email drafts and calendar
documents get their specialized layouts; everything else renders as a
styled article.`,
	Args: cobra.ExactArgs(1),
	RunE: runHTML,
}

func init() {
	htmlCmd.Flags().StringVarP(&htmlOutput, "output", "o", "", "Write HTML to a file instead of stdout")
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	doc := parser.Parse(string(content))
	page := htmlrender.New().Render(cmd.Context(), &doc)

	if htmlOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), page)
		return nil
	}
	if err := os.WriteFile(htmlOutput, []byte(page), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", htmlOutput, err)
	}
	return nil
}
