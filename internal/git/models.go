package git

import (
	"sort"
	"time"
)

// Chronology is a sequence of commit instants. After Sort it is ordered
// earliest first; identical instants are legal and preserved.
type Chronology []time.Time

// Sort orders the chronology ascending by instant.
func (c Chronology) Sort() {
	sort.Slice(c, func(i, j int) bool { return c[i].Before(c[j]) })
}

// IsSorted reports whether the chronology is ascending.
func (c Chronology) IsSorted() bool {
	return sort.SliceIsSorted(c, func(i, j int) bool { return c[i].Before(c[j]) })
}

// InspectOptions configures the repository inspector.
type InspectOptions struct {
	RepoPath  string
	Source    LogSource        // nil selects the git CLI
	OnWarning func(msg string) // nil prints "Warning: ..." to stdout
}
