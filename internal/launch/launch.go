// Package launch assembles the supervisor-facing view of the launch
// descriptor: the effective process environment for a selected profile and a
// JSON export of the descriptor itself.
package launch

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"patchman/internal/config"
	"patchman/internal/envfile"
)

// Descriptor is the JSON shape of the launch descriptor consumed by an
// external process supervisor.
type Descriptor struct {
	Name            string            `json:"name"`
	Script          string            `json:"script"`
	Interpreter     string            `json:"interpreter,omitempty"`
	InterpreterArgs []string          `json:"interpreter_args,omitempty"`
	EnvFile         string            `json:"env_file,omitempty"`
	Env             map[string]string `json:"env,omitempty"`
	EnvProduction   map[string]string `json:"env_production,omitempty"`
	ErrorFile       string            `json:"error_file,omitempty"`
	OutFile         string            `json:"out_file,omitempty"`
	LogFile         string            `json:"log_file,omitempty"`
	Time            bool              `json:"time"`
}

// BuildDescriptor maps the configured process section into its export shape.
func BuildDescriptor(cfg *config.Config) Descriptor {
	p := cfg.Process
	return Descriptor{
		Name:            p.Name,
		Script:          p.Script,
		Interpreter:     p.Interpreter,
		InterpreterArgs: p.InterpreterArgs,
		EnvFile:         p.EnvFile,
		Env:             p.Env,
		EnvProduction:   p.EnvProduction,
		ErrorFile:       p.ErrorFile,
		OutFile:         p.OutFile,
		LogFile:         p.LogFile,
		Time:            p.Time,
	}
}

// EffectiveEnv computes the environment the supervisor would hand the
// process: env_file variables first, then the env map, then env_production
// when the production profile is selected. A configured env_file that does
// not exist on disk is skipped; any other read failure is an error.
func EffectiveEnv(cfg *config.Config, production bool) (map[string]string, error) {
	env := make(map[string]string)

	if path := cfg.Process.EnvFile; path != "" {
		fileVars, err := envfile.Load(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load env_file: %w", err)
			}
		} else {
			for key, value := range fileVars {
				env[key] = value
			}
		}
	}

	for key, value := range cfg.Process.Env {
		env[key] = value
	}
	if production {
		for key, value := range cfg.Process.EnvProduction {
			env[key] = value
		}
	}
	return env, nil
}

// SortedKeys returns the environment variable names in lexical order for
// stable display.
func SortedKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Command renders the interpreter invocation the supervisor would execute.
func Command(cfg *config.Config) []string {
	p := cfg.Process
	if p.Interpreter == "" {
		return []string{p.Script}
	}
	cmd := make([]string, 0, len(p.InterpreterArgs)+2)
	cmd = append(cmd, p.Interpreter)
	cmd = append(cmd, p.InterpreterArgs...)
	return append(cmd, p.Script)
}
