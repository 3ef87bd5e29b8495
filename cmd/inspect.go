package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jarrensj/git-chron-job/internal/git"
	"github.com/jarrensj/git-chron-job/internal/output"
)

// inspectAndReport runs the repository inspection and prints the report.
// Every anticipated failure is converted into a printed message plus a nil
// result; the process still exits 0. A nil source selects the git CLI.
func inspectAndReport(repoPath string, source git.LogSource) git.Chronology {
	chron, err := git.Inspect(context.Background(), git.InspectOptions{
		RepoPath: repoPath,
		Source:   source,
	})
	if err != nil {
		printInspectError(err)
		return nil
	}
	if chron == nil {
		// Empty history; the inspector already printed the warning.
		return nil
	}

	writer := output.NewConsoleWriter(os.Stdout)
	if err := writer.Write(&output.Report{RepoPath: repoPath, Commits: chron}); err != nil {
		fmt.Printf("Unexpected error: %v\n", err)
		return nil
	}

	return chron
}

// printInspectError maps categorized inspector failures to their user-facing
// messages. Warnings and errors share stdout with the report.
func printInspectError(err error) {
	var notFound *git.NotFoundError
	var notARepo *git.NotARepositoryError
	var tool *git.ToolError

	switch {
	case errors.As(err, &notFound):
		fmt.Printf("Error: Path '%s' does not exist.\n", notFound.Path)
	case errors.As(err, &notARepo):
		fmt.Printf("Error: '%s' is not a valid Git repository.\n", notARepo.Path)
	case errors.As(err, &tool):
		fmt.Printf("Error running git command: %s\n", tool.Diagnostic())
	default:
		fmt.Printf("Unexpected error: %v\n", err)
	}
}
