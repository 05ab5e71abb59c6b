// Package patch repairs known mis-encoded emoji sequences in a source file.
//
// A Ruleset is an ordered list of literal substitutions; the built-in rules
// cover each known emoji both as raw UTF-8 and as the Windows-1252 mojibake
// of those bytes, mapping both to an ASCII stand-in. File applies a ruleset
// to one file in place: read everything, substitute, write back. There is no
// dry-run, no backup, and no partial-write recovery; the tool is a one-shot,
// developer-supervised cleanup.
package patch
