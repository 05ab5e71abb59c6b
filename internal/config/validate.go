package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProcess(); err != nil {
		return err
	}
	if err := c.validatePatch(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateProcess() error {
	if c.Process.Name == "" {
		return errors.New("process.name must be set")
	}
	if c.Process.Script == "" {
		return errors.New("process.script must be set")
	}
	for key := range c.Process.Env {
		if key == "" {
			return errors.New("process.env contains an empty variable name")
		}
	}
	for key := range c.Process.EnvProduction {
		if key == "" {
			return errors.New("process.env_production contains an empty variable name")
		}
	}
	return nil
}

func (c *Config) validatePatch() error {
	if c.Patch.Target == "" {
		return errors.New("patch.target must be set")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
