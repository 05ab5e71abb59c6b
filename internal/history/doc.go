// Package history persists patch run records in SQLite.
//
// The store is opt-in: nothing opens the database unless [history] enabled
// is set, so a bare patch run touches only the target file. Each row captures
// one invocation with its run id, target path, per-rule hit counts, and
// timestamps. The database is an audit convenience, not workflow state;
// deleting it loses nothing the tool needs.
package history
