// Package config loads, normalizes, and validates patchman configuration data.
//
// One TOML file serves two roles: the [process] table is a launch descriptor
// an external process supervisor reads to start the application, and the
// remaining tables configure the patch tool itself. Tilde shortcuts in
// tool-owned paths are expanded; descriptor paths are passed through verbatim
// because the supervisor resolves them relative to its own working directory.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
