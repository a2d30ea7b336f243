package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/xolan/tasklog/internal/config"
	"github.com/xolan/tasklog/internal/ollama"
	"github.com/xolan/tasklog/internal/prompt"
	"github.com/xolan/tasklog/internal/storage"
	"github.com/xolan/tasklog/internal/task"
)

// User-visible messages for inference failures. The query command never
// fails on network errors; these strings are returned as the answer.
const (
	MsgUnreachable     = "Error: Could not connect to Ollama. Make sure Ollama is running (ollama serve)."
	MsgInvalidResponse = "Error: Received invalid response from Ollama."
)

// Generator answers a prompt with a named model. The ollama client is the
// production implementation; tests substitute doubles for each failure mode.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// TaskService provides operations for logging and querying tasks
type TaskService struct {
	storagePath string
	config      config.Config
	generator   Generator
}

// NewTaskService creates a new TaskService
func NewTaskService(storagePath string, cfg config.Config, generator Generator) *TaskService {
	return &TaskService{
		storagePath: storagePath,
		config:      cfg,
		generator:   generator,
	}
}

// Add validates the input, then appends a record stamped with the current
// instant. Validation happens strictly before any write: on failure the
// store is untouched.
func (s *TaskService) Add(description, date string, hours float64) (*task.Record, error) {
	r, err := task.New(description, date, hours)
	if err != nil {
		return nil, err
	}

	if err := storage.AppendRecord(s.storagePath, r); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return &r, nil
}

// List returns all records in insertion order, creating an empty store if
// none exists.
func (s *TaskService) List() ([]task.Record, error) {
	return storage.ReadRecords(s.storagePath)
}

// Ask builds the prompt embedding every record and dispatches it to the
// inference service. Inference failures are converted into descriptive
// answer text rather than errors; Ask never fails once records are loaded.
func (s *TaskService) Ask(ctx context.Context, records []task.Record, question, model string) string {
	if model == "" {
		model = s.config.DefaultModel
	}

	p := prompt.Build(records, question)

	answer, err := s.generator.Generate(ctx, model, p)
	if err != nil {
		switch {
		case errors.Is(err, ollama.ErrUnreachable):
			return MsgUnreachable
		case errors.Is(err, ollama.ErrInvalidResponse):
			return MsgInvalidResponse
		default:
			return fmt.Sprintf("Error communicating with Ollama: %v", err)
		}
	}

	return answer
}
