package patch

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// RuleHit records how many times one rule matched during a run.
type RuleHit struct {
	Rule  Rule
	Count int
}

// Result summarizes one patch run over a single file.
type Result struct {
	Target       string
	Replacements int
	Hits         []RuleHit
	Changed      bool
}

// File reads the target, applies the ruleset in order, and writes the result
// back to the same path with the file's original permission bits. A read
// failure aborts before anything is written, so a missing target is never
// created. When useLock is set an advisory lock is held on the target for
// the duration of the rewrite.
func File(path string, rules Ruleset, useLock bool) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat target: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("target %s is a directory", path)
	}

	if useLock {
		lock := flock.New(path)
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire target lock: %w", err)
		}
		if !ok {
			return nil, errors.New("target file is locked by another process")
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target: %w", err)
	}

	text, counts := rules.Apply(string(data))
	result := &Result{Target: path, Replacements: Total(counts)}
	for i, n := range counts {
		if n > 0 {
			result.Hits = append(result.Hits, RuleHit{Rule: rules[i], Count: n})
		}
	}

	if result.Replacements == 0 {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write target: %w", err)
	}
	result.Changed = true
	return result, nil
}
