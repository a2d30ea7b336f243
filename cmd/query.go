package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tasklog/internal/cli"
	"github.com/xolan/tasklog/internal/cli/handlers"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Query tasks using natural language",
	Long: `Query the task log using natural language via a local Ollama server.

The entire log is embedded into the prompt, so answers are based only on
the logged data. Requires a running Ollama server (ollama serve).

Examples:
  tasklog query "How many hours were logged last week?"
  tasklog query "What did I work on most?" --model mistral`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, _ := cmd.Flags().GetString("model")
		handlers.QueryTasks(cli.GetDeps(), args[0], model)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().String("model", "", "Ollama model to use (defaults to llama3)")
}
