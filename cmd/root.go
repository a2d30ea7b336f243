// Package cmd defines the tasklog command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tasklog/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "tasklog",
	Short: "Log and query tasks from the command line",
	Long: `tasklog is a CLI tool for logging tasks with dates and hours spent,
and for querying the task log using natural language via Ollama.

Usage:
  tasklog add <task> [--date YYYY-MM-DD] [--hours N]   Log a new task
  tasklog query <question> [--model NAME]              Ask a question about the log
  tasklog list                                         List all logged tasks

Tasks are stored in tasklog.csv in the working directory. Queries require a
local Ollama server (ollama serve).`,
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print help and exit non-zero
		_ = cmd.Help()
		cli.GetDeps().Exit(1)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tasklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
