// Package output renders commit chronology reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jarrensj/git-chron-job/internal/git"
)

const (
	ruleWidth        = 60
	commitTimeLayout = "Monday, 2006-01-02 15:04:05 MST"
)

// Report holds a repository's sorted commit chronology for rendering.
type Report struct {
	RepoPath string
	Commits  git.Chronology
}

// ReportWriter writes chronology reports.
type ReportWriter interface {
	Write(report *Report) error
}

// ConsoleWriter renders the report as plain text with one line per commit.
type ConsoleWriter struct {
	out io.Writer
}

// NewConsoleWriter creates a console writer targeting out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

// Write outputs the chronology report.
func (w *ConsoleWriter) Write(report *Report) error {
	rule := strings.Repeat("-", ruleWidth)
	header := color.New(color.FgGreen)

	fmt.Fprintln(w.out)
	header.Fprintf(w.out, "Commit dates and times (PST) for repository at '%s':\n", report.RepoPath)
	fmt.Fprintln(w.out, rule)
	for _, when := range report.Commits {
		fmt.Fprintln(w.out, when.Format(commitTimeLayout))
	}
	fmt.Fprintln(w.out, rule)
	fmt.Fprintf(w.out, "Total commits: %d\n", len(report.Commits))

	return nil
}

// Compile-time interface conformance check.
var _ ReportWriter = (*ConsoleWriter)(nil)
