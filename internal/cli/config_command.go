package cli

import (
	"context"
	"fmt"
	"io"

	"task-manager/internal/config"
)

// ConfigShowCommand prints the effective configuration as YAML
type ConfigShowCommand struct {
	config *config.Config
	out    io.Writer
}

// NewConfigShowCommand creates a new config show handler
func NewConfigShowCommand(cfg *config.Config, out io.Writer) *ConfigShowCommand {
	return &ConfigShowCommand{config: cfg, out: out}
}

// Execute writes the configuration in config file syntax
func (c *ConfigShowCommand) Execute(ctx context.Context, args []string) error {
	data, err := c.config.YAML()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = c.out.Write(data)
	return err
}
