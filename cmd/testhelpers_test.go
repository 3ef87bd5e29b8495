package cmd

import (
	"io"
	"os"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

// initRepoDir creates a temporary directory containing real git metadata.
func initRepoDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return dir
}

// captureStdout redirects stdout for the duration of fn and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	oldStdout := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()

	w.Close()
	os.Stdout = oldStdout
	return <-done
}
