package service

import (
	"github.com/xolan/tasklog/internal/config"
	"github.com/xolan/tasklog/internal/ollama"
)

// Services holds all service instances used by the application
type Services struct {
	Task   *TaskService
	Config *ConfigService
}

// NewServices creates a new Services instance from the config file on disk
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg), nil
}

// NewServicesWithConfig creates a new Services instance from an explicit
// config (useful for testing)
func NewServicesWithConfig(configPath string, cfg config.Config) *Services {
	client := ollama.NewClient(ollama.WithURL(cfg.OllamaURL))
	return &Services{
		Task:   NewTaskService(cfg.StorageFile, cfg, client),
		Config: NewConfigService(configPath, cfg),
	}
}
