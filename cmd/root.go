package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/app"
	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/session"
)

var (
	debugMode             bool
	quietMode             bool
	sessionName           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "canvas [file]",
	Short: "Live markdown presentation surface for the terminal",
	Long: `Canvas watches a markdown file and renders it as a live document in the
terminal. Agents and editors write plain markdown; canvas re-parses and
re-renders on every save.

With no arguments the most recently modified session canvas is opened.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runWatch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&sessionName, "name", "", "Session name to create or open")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode || os.Getenv("DEBUG") != "" {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("canvas %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("canvas %s\n", version)
}

// resolveWatchTarget picks the file the viewer starts on. An explicit
// file argument wins; a named session (flag or CANVAS_SESSION) is
// created on demand; otherwise the app auto-opens the most recent
// session, creating the default one only when the directory is empty.
func resolveWatchTarget(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	name := sessionName
	if name == "" {
		name = os.Getenv("CANVAS_SESSION")
	}
	if name == "" {
		if _, ok := session.MostRecent(cfg.GetCanvasDir()); ok {
			return "", nil
		}
		name = session.DefaultName("")
	}

	sess, err := session.Create(cfg.GetCanvasDir(), name)
	if err != nil {
		return "", err
	}
	return sess.Path, nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.EnsureCanvasDir(); err != nil {
		return fmt.Errorf("error creating canvas directory: %w", err)
	}

	defer logger.Close()

	target, err := resolveWatchTarget(cfg, args)
	if err != nil {
		return err
	}

	m := app.New(cfg, target)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
