package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:            "git-chron-job",
		Usage:           "Report the commit dates and times of a Git repository in Pacific time",
		ArgsUsage:       "<path-to-repository>",
		HideHelpCommand: true,
		Action:          rootAction,
	}
}

// rootAction enforces the single positional argument and runs the inspection.
// Anything other than exactly one argument prints usage and exits 1; the
// inspector is never invoked in that case.
func rootAction(c *cli.Context) error {
	if c.NArg() != 1 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}

	inspectAndReport(c.Args().First(), nil)
	return nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
