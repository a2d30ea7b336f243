// Package handlers implements the command dispatcher operations, mapping
// service results and errors to user-facing output.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/tasklog/internal/cli"
	"github.com/xolan/tasklog/internal/task"
)

// AddTask validates and logs a new task. Validation failures abort without
// writing and exit non-zero.
func AddTask(deps *cli.Deps, description, date string, hours float64) {
	record, err := deps.Services.Task.Add(description, date, hours)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidDate):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid date format. Please use YYYY-MM-DD format.")
		case errors.Is(err, task.ErrNegativeHours):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Hours must be a non-negative number.")
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Task added: '%s' on %s (%s hours)\n",
		record.Description, record.Date, cli.FormatHours(record.Hours))
}

// QueryTasks answers a natural-language question about the log via the
// inference service. An empty log stops before any network call. Inference
// failures are printed as the answer; the command still succeeds.
func QueryTasks(deps *cli.Deps, question, model string) {
	records, err := deps.Services.Task.List()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks found in the log.")
		return
	}

	if model == "" {
		model = deps.Config.DefaultModel
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Querying tasks using Ollama model '%s'...\n", model)
	_, _ = fmt.Fprintf(deps.Stdout, "Question: %s\n\n", question)

	answer := deps.Services.Task.Ask(context.Background(), records, question, model)

	_, _ = fmt.Fprintln(deps.Stdout, "\nOllama Response:")
	_, _ = fmt.Fprintln(deps.Stdout, answer)
}

// ListTasks prints every logged task with its 1-based index and the total hours.
func ListTasks(deps *cli.Deps) {
	records, err := deps.Services.Task.List()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks found in the log.")
		return
	}

	styles := cli.DefaultListStyles()

	_, _ = fmt.Fprintln(deps.Stdout, styles.Header.Render(
		fmt.Sprintf("Task log (%d %s):", len(records), cli.Pluralize("task", len(records)))))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	// Calculate width for right-aligned indices
	maxIndexWidth := len(fmt.Sprintf("%d", len(records)))

	totalHours := 0.0
	for i, r := range records {
		totalHours += r.Hours
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s  %s %s\n",
			styles.Index.Render(fmt.Sprintf("[%*d]", maxIndexWidth, i+1)),
			styles.Date.Render(r.Date),
			styles.Desc.Render(r.Description),
			styles.Hours.Render(fmt.Sprintf("(%s hours)", cli.FormatHours(r.Hours))))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, styles.Total.Render(
		fmt.Sprintf("Total: %s hours", cli.FormatHours(totalHours))))
}
