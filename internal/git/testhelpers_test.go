package git

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a temporary git repository for tests.
func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	return dir, repo
}

// addCommit adds a single-file commit with the given committer time.
func addCommit(t *testing.T, repo *gogit.Repository, message string, when time.Time) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	filename := fmt.Sprintf("%s.txt", when.UTC().Format("20060102T150405"))
	content := fmt.Sprintf("Content for %s at %s\n", message, when.String())
	if err := os.WriteFile(filepath.Join(w.Filesystem.Root(), filename), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := w.Add(filename); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	sig := &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  when,
	}
	if _, err := w.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

// collectWarnings returns a warning hook appending into the given slice.
func collectWarnings(warnings *[]string) func(string) {
	return func(msg string) {
		*warnings = append(*warnings, msg)
	}
}
