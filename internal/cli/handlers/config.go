package handlers

import (
	"fmt"

	"github.com/xolan/tasklog/internal/cli"
)

// ShowConfig displays the effective configuration and where it comes from.
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s", deps.Services.Config.GetPath())
	if !deps.Services.Config.Exists() {
		_, _ = fmt.Fprint(deps.Stdout, " (not found, using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "  storage_file:  %s\n", cfg.StorageFile)
	_, _ = fmt.Fprintf(deps.Stdout, "  ollama_url:    %s\n", cfg.OllamaURL)
	_, _ = fmt.Fprintf(deps.Stdout, "  default_model: %s\n", cfg.DefaultModel)
}

// InitConfig writes a commented sample config file with the defaults.
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", deps.Services.Config.GetPath())
}
