package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patchman/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Process.Name != "app" {
		t.Fatalf("unexpected process name: %q", cfg.Process.Name)
	}
	if cfg.Process.Interpreter != "node" {
		t.Fatalf("unexpected interpreter: %q", cfg.Process.Interpreter)
	}
	if cfg.Process.Env["NODE_ENV"] != "development" {
		t.Fatalf("expected default NODE_ENV=development, got %q", cfg.Process.Env["NODE_ENV"])
	}
	if cfg.Process.EnvProduction["NODE_ENV"] != "production" {
		t.Fatalf("expected production NODE_ENV=production, got %q", cfg.Process.EnvProduction["NODE_ENV"])
	}
	if !cfg.Process.Time {
		t.Fatal("expected timestamped logs by default")
	}
	if cfg.Patch.Target != "src/server.js" {
		t.Fatalf("unexpected patch target: %q", cfg.Patch.Target)
	}
	if !cfg.Patch.Lock {
		t.Fatal("expected patch locking enabled by default")
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "patchman", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[process]
name = "billing-api"
script = "dist/index.js"
interpreter = "node"
interpreter_args = ["--enable-source-maps"]
env_file = ".env.local"
time = false

[patch]
target = "dist/index.js"
lock = false

[history]
enabled = true
path = "~/state/history.db"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}

	if cfg.Process.Name != "billing-api" {
		t.Fatalf("unexpected name: %q", cfg.Process.Name)
	}
	if len(cfg.Process.InterpreterArgs) != 1 || cfg.Process.InterpreterArgs[0] != "--enable-source-maps" {
		t.Fatalf("unexpected interpreter args: %v", cfg.Process.InterpreterArgs)
	}
	if cfg.Process.Time {
		t.Fatal("expected time disabled by override")
	}
	if cfg.Patch.Lock {
		t.Fatal("expected lock disabled by override")
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by override")
	}
	wantHistory := filepath.Join(tempHome, "state", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("expected expanded history path %q, got %q", wantHistory, cfg.History.Path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty process name",
			content: "[process]\nname = \"  \"\n",
			want:    "process.name",
		},
		{
			name:    "empty script",
			content: "[process]\nscript = \"\"\n",
			want:    "process.script",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"yaml\"\n",
			want:    "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"trace\"\n",
			want:    "logging.level",
		},
		{
			name:    "empty patch target",
			content: "[patch]\ntarget = \"\"\n",
			want:    "patch.target",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Process.Env["NODE_ENV"] != "development" {
		t.Fatalf("sample default env: %v", cfg.Process.Env)
	}
}

func TestExpandPathResolvesTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(tempHome, "x", "y") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
