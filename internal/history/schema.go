package history

const schema = `
CREATE TABLE IF NOT EXISTS patch_runs (
    id TEXT PRIMARY KEY,
    target TEXT NOT NULL,
    replacements INTEGER NOT NULL,
    rule_hits TEXT NOT NULL DEFAULT '{}',
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_patch_runs_started_at ON patch_runs(started_at);
`
