package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tasklog/internal/cli"
	"github.com/xolan/tasklog/internal/cli/handlers"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Add a new task to the log",
	Long: `Add a new task to the log.

The task is stamped with the current instant and appended to the log.
The date defaults to today and hours spent default to 0.

Examples:
  tasklog add "Write report"
  tasklog add "Write report" --date 2024-01-15 --hours 3.5`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		hours, _ := cmd.Flags().GetFloat64("hours")
		handlers.AddTask(cli.GetDeps(), args[0], date, hours)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("date", "", "Date of the task in YYYY-MM-DD format (defaults to today)")
	addCmd.Flags().Float64("hours", 0.0, "Hours spent on the task (defaults to 0.0)")
}
