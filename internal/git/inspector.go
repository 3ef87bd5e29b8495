// Package git inspects the commit history of a local Git repository and
// reports it as a timezone-normalized chronology.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Pacific conversion must work even without a system zone database.
	_ "time/tzdata"
)

// reportZone is the fixed target timezone for every reported instant.
const reportZone = "America/Los_Angeles"

// Inspector reads commit dates from a Git repository and normalizes them
// to Pacific time.
type Inspector struct {
	opts   InspectOptions
	source LogSource
}

// NewInspector creates an inspector for the given options.
func NewInspector(opts InspectOptions) *Inspector {
	source := opts.Source
	if source == nil {
		source = CLISource{}
	}
	return &Inspector{opts: opts, source: source}
}

// Inspect is a convenience wrapper around NewInspector(opts).Inspect(ctx).
func Inspect(ctx context.Context, opts InspectOptions) (Chronology, error) {
	return NewInspector(opts).Inspect(ctx)
}

// Inspect returns the repository's commit chronology, sorted ascending and
// converted to Pacific time. Lines that fail to parse are reported through
// the warning hook and skipped. A repository yielding no parsable dates is
// reported as a warning and returns a nil chronology with a nil error.
func (i *Inspector) Inspect(ctx context.Context) (Chronology, error) {
	if err := validateRepoPath(i.opts.RepoPath); err != nil {
		return nil, err
	}

	out, err := i.source.CommitDates(ctx, i.opts.RepoPath)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(reportZone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", reportZone, err)
	}

	var chron Chronology
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		when, err := time.Parse(time.RFC3339, line)
		if err != nil {
			i.warnf("Could not parse date '%s': %v", line, err)
			continue
		}

		chron = append(chron, when.In(loc))
	}

	if len(chron) == 0 {
		i.warnf("No valid commit dates found in repository '%s'", i.opts.RepoPath)
		return nil, nil
	}

	// The tool's native order is not trusted.
	chron.Sort()

	return chron, nil
}

func (i *Inspector) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if i.opts.OnWarning != nil {
		i.opts.OnWarning(msg)
		return
	}
	fmt.Printf("Warning: %s\n", msg)
}

// validateRepoPath checks that the path exists and carries the .git
// metadata marker. No subprocess is spawned until both checks pass.
func validateRepoPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &NotFoundError{Path: path}
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return &NotARepositoryError{Path: path}
	}
	return nil
}
