package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeProcess(); err != nil {
		return err
	}
	if err := c.normalizePatch(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeProcess() error {
	c.Process.Name = strings.TrimSpace(c.Process.Name)
	c.Process.Script = strings.TrimSpace(c.Process.Script)
	c.Process.Interpreter = strings.TrimSpace(c.Process.Interpreter)
	c.Process.EnvFile = strings.TrimSpace(c.Process.EnvFile)
	args := make([]string, 0, len(c.Process.InterpreterArgs))
	for _, arg := range c.Process.InterpreterArgs {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	c.Process.InterpreterArgs = args
	if c.Process.Env == nil {
		c.Process.Env = map[string]string{}
	}
	if c.Process.EnvProduction == nil {
		c.Process.EnvProduction = map[string]string{}
	}
	return nil
}

func (c *Config) normalizePatch() error {
	c.Patch.Target = strings.TrimSpace(c.Patch.Target)
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if dir := strings.TrimSpace(c.Logging.Dir); dir != "" {
		if expanded, err := expandPath(dir); err == nil {
			c.Logging.Dir = expanded
		}
	} else {
		c.Logging.Dir = ""
	}
}
