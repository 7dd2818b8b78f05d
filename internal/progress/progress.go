// Package progress prints numbered pipeline phases to a writer.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Tracker numbers pipeline phases as they run and keeps a failure
// list for the final summary.
type Tracker struct {
	out      io.Writer
	total    int
	current  int
	started  time.Time
	failures []string
}

// NewTracker creates a tracker expecting total phases, writing to out.
func NewTracker(out io.Writer, total int) *Tracker {
	return &Tracker{
		out:     out,
		total:   total,
		started: time.Now(),
	}
}

// Step announces the next phase as "[i/n] description".
func (t *Tracker) Step(format string, args ...any) {
	t.current++

	fmt.Fprintf(t.out, "[%d/%d] %s\n", t.current, t.total, fmt.Sprintf(format, args...))
}

// Fail records a non-fatal failure to report in the summary.
func (t *Tracker) Fail(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Failures returns the recorded non-fatal failures.
func (t *Tracker) Failures() []string {
	return t.failures
}

// Summary prints the closing report with elapsed time and any
// recorded failures.
func (t *Tracker) Summary() {
	fmt.Fprintln(t.out, "------------------------------------------------")
	fmt.Fprintf(t.out, "Completed %d/%d phases in %v\n", t.current, t.total, time.Since(t.started).Round(time.Millisecond))

	if len(t.failures) > 0 {
		fmt.Fprintf(t.out, "Failures: %d\n", len(t.failures))

		for _, f := range t.failures {
			fmt.Fprintf(t.out, "  - %s\n", f)
		}
	}

	fmt.Fprintln(t.out, "------------------------------------------------")
}
