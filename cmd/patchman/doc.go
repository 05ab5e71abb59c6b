// Package main hosts the patchman CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the two jobs this tool has: repairing
// mis-encoded emoji sequences in the configured target file, and inspecting
// the launch descriptor an external process supervisor consumes (effective
// environment, JSON export, replacement rules, run history). Configuration
// resolution and logger setup live in commandContext so subcommands stay
// declarative.
package main
