package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/session"
)

var (
	cleanAll    bool
	skipConfirm bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove stale session files",
	Long: `Removes session canvas files that have not been modified for a week.
With --all, every session file is removed.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Remove every session file, not just stale ones")
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	sessions, err := session.List(cfg.GetCanvasDir())
	if err != nil {
		return fmt.Errorf("error listing sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	what := "stale session file(s)"
	if cleanAll {
		what = fmt.Sprintf("all %d session file(s)", len(sessions))
	}
	fmt.Printf("This will remove %s from %s\n", what, cfg.GetCanvasDir())

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	removed, err := session.RemoveStale(cfg.GetCanvasDir(), cleanAll)
	if err != nil {
		return fmt.Errorf("error removing sessions: %w", err)
	}

	if removed == 0 {
		fmt.Println("No stale session files found.")
	} else {
		fmt.Printf("Removed %d session file(s).\n", removed)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
