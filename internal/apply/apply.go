// Package apply realizes a computed release plan against the working tree.
// It walks the plan's edits in order, runs each updater over the current
// file content, and writes the rewritten files atomically. A dry-run mode
// computes everything, including diff previews, without touching disk.
package apply

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/release"
)

const defaultFileMode os.FileMode = 0o644

// Options control how a plan is applied.
type Options struct {
	// DryRun computes results and diffs without writing any file.
	DryRun bool
	// DiffMaxLines caps the rendered diff preview per file. Zero or
	// negative selects DefaultDiffMaxLines.
	DiffMaxLines int
}

// Result reports the outcome of one edit.
type Result struct {
	// Path is the repo-relative target of the edit.
	Path string
	// Created reports that the target did not exist before the edit.
	Created bool
	// Changed reports that the rewritten content differs from the original.
	Changed bool
	// Diff is a unified diff preview of the edit, empty when unchanged.
	Diff string
	// Truncated reports that Diff was cut at the configured line cap.
	Truncated bool
}

// Run applies the plan's edits under root in order. Edits whose target is
// missing are created when the edit allows it and rejected otherwise. The
// returned results parallel the input updates.
func Run(sys System, root string, updates []release.Update, opts Options) ([]Result, error) {
	if sys == nil {
		return nil, errors.New(messages.ApplySystemRequired)
	}
	results := make([]Result, 0, len(updates))
	for _, update := range updates {
		result, err := applyOne(sys, root, update, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func applyOne(sys System, root string, update release.Update, opts Options) (Result, error) {
	target := filepath.Join(root, filepath.FromSlash(update.Path))

	current, mode, created, err := readCurrent(sys, target, update)
	if err != nil {
		return Result{}, err
	}

	next, err := update.Updater.Update(current)
	if err != nil {
		return Result{}, fmt.Errorf(messages.ApplyUpdaterFailedFmt, update.Updater.Name(), update.Path, err)
	}

	result := Result{Path: update.Path, Created: created}
	if next == current && !created {
		return result, nil
	}
	result.Changed = next != current
	result.Diff, result.Truncated = renderTruncatedUnifiedDiff(update.Path, update.Path, current, next, opts.DiffMaxLines)

	if opts.DryRun {
		return result, nil
	}
	if err := sys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Result{}, err
	}
	if err := sys.WriteFileAtomic(target, []byte(next), mode); err != nil {
		return Result{}, err
	}
	return result, nil
}

// readCurrent loads the original content of the edit target. Strategies that
// already fetched the file hand the content over via CachedContent; the file
// must still exist on disk so the rewrite has somewhere to land.
func readCurrent(sys System, target string, update release.Update) (content string, mode os.FileMode, created bool, err error) {
	info, statErr := sys.Stat(target)
	switch {
	case statErr == nil:
		mode = info.Mode().Perm()
	case os.IsNotExist(statErr):
		if !update.CreateIfMissing {
			return "", 0, false, fmt.Errorf(messages.ApplyMissingTargetFmt, update.Path)
		}
		return "", defaultFileMode, true, nil
	default:
		return "", 0, false, statErr
	}

	if update.CachedContent != nil {
		return *update.CachedContent, mode, false, nil
	}
	data, readErr := sys.ReadFile(target)
	if readErr != nil {
		return "", 0, false, readErr
	}
	return string(data), mode, false, nil
}
