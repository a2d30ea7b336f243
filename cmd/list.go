package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tasklog/internal/cli"
	"github.com/xolan/tasklog/internal/cli/handlers"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all logged tasks",
	Long:  `List every task in the log in insertion order, with the total hours spent.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListTasks(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
