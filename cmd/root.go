package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamster-nav/hamsternav/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hamsternav",
	Short: "Browse and search categorized bookmark collections",
	Long: `Hamsternav loads categorized site records from CSV files, organizes
them into a hierarchical tree, and lets you browse and search the
hierarchy — including pinyin (phonetic) matching for Chinese text —
from the command line, over HTTP, or via MCP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

