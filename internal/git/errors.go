package git

import "fmt"

// NotFoundError reports a repository path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path '%s' does not exist", e.Path)
}

// NotARepositoryError reports a path that exists but carries no Git metadata.
type NotARepositoryError struct {
	Path string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("'%s' is not a valid Git repository", e.Path)
}

// ToolError reports a failed git subprocess invocation. Output holds the
// combined stdout/stderr captured from the subprocess for diagnostics.
type ToolError struct {
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git log failed: %v: %s", e.Err, e.Output)
	}
	return fmt.Sprintf("git log failed: %v", e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Diagnostic returns the subprocess output when any was captured, falling
// back to the underlying error (e.g. git missing from PATH).
func (e *ToolError) Diagnostic() string {
	if e.Output != "" {
		return e.Output
	}
	return e.Err.Error()
}
