package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TestLogger receives progress notifications while the suite runs.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput []string)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                  {}
func (nullTestLogger) TestError(TestID, error)             {}
func (nullTestLogger) TestFinished(TestID, bool, []string) {}
func (nullTestLogger) TestSkipped(TestID, string)          {}

var (
	failColor = color.New(color.FgRed, color.Bold)
	passColor = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
)

// ConsoleTestLogger writes human-readable progress to Out.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
}

func (c ConsoleTestLogger) TestStarted(id TestID) {
	if len(id.Path) > 1 {
		fmt.Fprintf(c.Out, "[%s]\n", id)
	}
}

func (c ConsoleTestLogger) TestError(_ TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput []string) {
	if len(id.Path) <= 1 {
		return
	}
	if !failed {
		passColor.Fprintf(c.Out, "  PASSED: %s\n", id)
		return
	}
	failColor.Fprintf(c.Out, "  FAILED: %s\n", id)
	if c.DebugOutputOnFailure {
		for _, line := range debugOutput {
			fmt.Fprintf(c.Out, "    DEBUG %s\n", line)
		}
	}
}

func (c ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

// PrintResults writes the run summary.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		passColor.Fprintf(w, "All tests passed (%d)\n", results.Passed())
		return
	}
	failColor.Fprintf(w, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Failures)+results.Passed())
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
	}
}
