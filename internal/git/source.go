package git

import (
	"context"
	"os/exec"
	"strings"
)

// LogSource retrieves the raw commit-date log for a repository.
// This abstraction allows the inspector to be tested without a real git executable.
type LogSource interface {
	// CommitDates returns the full commit history of the repository at
	// repoPath, one strict ISO-8601 committer date per line.
	CommitDates(ctx context.Context, repoPath string) ([]byte, error)
}

// CLISource reads commit dates by invoking the git command-line tool.
type CLISource struct{}

// CommitDates runs `git log` with a strict ISO-8601 committer-date format.
// The subprocess is always fully reaped: its combined output is read to
// completion and its exit status checked before returning.
func (CLISource) CommitDates(ctx context.Context, repoPath string) ([]byte, error) {
	args := []string{
		"-C", repoPath,
		"log",
		"--no-color",
		"--pretty=format:%cI",
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return nil, &ToolError{Output: strings.TrimSpace(string(out)), Err: err}
	}
	return out, nil
}

// Compile-time interface conformance check.
var _ LogSource = CLISource{}
