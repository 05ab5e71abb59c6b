package config

const (
	defaultProcessName     = "app"
	defaultProcessScript   = "src/server.js"
	defaultInterpreter     = "node"
	defaultEnvFile         = ".env"
	defaultErrorFile       = "logs/err.log"
	defaultOutFile         = "logs/out.log"
	defaultCombinedLogFile = "logs/combined.log"
	defaultPatchTarget     = "src/server.js"
	defaultHistoryPath     = "~/.local/share/patchman/history.db"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Process: Process{
			Name:        defaultProcessName,
			Script:      defaultProcessScript,
			Interpreter: defaultInterpreter,
			EnvFile:     defaultEnvFile,
			Env: map[string]string{
				"NODE_ENV": "development",
			},
			EnvProduction: map[string]string{
				"NODE_ENV": "production",
			},
			ErrorFile: defaultErrorFile,
			OutFile:   defaultOutFile,
			LogFile:   defaultCombinedLogFile,
			Time:      true,
		},
		Patch: Patch{
			Target: defaultPatchTarget,
			Lock:   true,
		},
		History: History{
			Path: defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
