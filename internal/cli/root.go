// Package cli implements the sudoq CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sudoq/internal/config"
	"sudoq/internal/corpus"
)

var (
	workspaceFlag string
	configFlag    string
	formatFlag    string
	verboseFlag   bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "sudoq",
	Short: "Fetch, store and render sudoku puzzles",
	Long: "sudoq pulls puzzles embedded in sudokuonline.io pages and stores each one\n" +
		"as a JSON document in the workspace. Stored puzzles can be rendered as PNG,\n" +
		"PDF or HTML and revealed in full, per box or per cell.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verboseFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace dir (default: $SUDOQ_WORKSPACE or ~/.sudoq)")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: $SUDOQ_CONFIG or ~/.config/sudoq/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging to stderr")
}

func loadConfig() *config.Config {
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			exitErr("load config", err)
		}
		return cfg
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

func workspaceDir(cfg *config.Config) string {
	return cfg.ResolveWorkspace(workspaceFlag)
}

func puzzlesDir(cfg *config.Config) string {
	return filepath.Join(workspaceDir(cfg), "puzzles")
}

func rendersDir(cfg *config.Config) string {
	return filepath.Join(workspaceDir(cfg), "renders")
}

func openStore(cfg *config.Config) *corpus.Store {
	return corpus.NewStore(puzzlesDir(cfg))
}

func jsonOutput() bool {
	return formatFlag != "text"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
