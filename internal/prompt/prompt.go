// Package prompt builds the natural-language prompt sent to the inference
// service. Building is a pure function of the records and the question:
// identical input always yields byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/xolan/tasklog/internal/task"
)

const (
	preamble = "You are a helpful assistant analyzing task log data. " +
		"Please answer the following question based on the task data provided."
	closing = "Please provide a clear and concise answer based only on the task data provided."
)

// Build produces the prompt text embedding every record verbatim, enumerated
// 1-indexed in insertion order, followed by the question. The entire log is
// included; no truncation or summarization.
func Build(records []task.Record, question string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(preamble)
	sb.WriteString("\n\n")

	sb.WriteString("Task data:\n")
	for i, r := range records {
		fmt.Fprintf(&sb, "%d. Date: %s, Hours: %s, Task: %s\n",
			i+1, r.Date, task.FormatHours(r.Hours), r.Description)
	}

	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\n")
	sb.WriteString(closing)
	sb.WriteString("\n")

	return sb.String()
}
