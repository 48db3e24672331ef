// Package report tracks the outcome of every setup step over one run and
// prints a summary when the run finishes. Nothing is persisted: the tool is
// a one-shot bootstrap, and idempotence on the next run comes from probing
// PATH again, not from a ledger.
package report

import "devsetup/internal/logger"

// Outcome classifies how a single setup step ended.
type Outcome string

const (
	Installed Outcome = "installed"
	Skipped   Outcome = "skipped" // already present on the host
	Failed    Outcome = "failed"  // fatal; the run stops after recording it
)

// Entry records one step's result.
type Entry struct {
	Name    string
	Outcome Outcome
	Detail  string // install path, skip reason, or error text
}

// Report accumulates entries in execution order.
type Report struct {
	entries []Entry
}

func New() *Report {
	return &Report{}
}

// Add records a step outcome.
func (r *Report) Add(name string, outcome Outcome, detail string) {
	r.entries = append(r.entries, Entry{Name: name, Outcome: outcome, Detail: detail})
}

// Entries returns the recorded outcomes in execution order.
func (r *Report) Entries() []Entry {
	return r.entries
}

// Print writes the summary through the logger, one line per step, colored
// by outcome.
func (r *Report) Print() {
	if len(r.entries) == 0 {
		return
	}
	logger.Step("\nSetup summary:\n")
	for _, e := range r.entries {
		line := "  %-12s %s"
		if e.Detail != "" {
			line += " (" + e.Detail + ")"
		}
		line += "\n"
		if e.Outcome == Failed {
			logger.Error(line, e.Outcome, e.Name)
		} else {
			logger.Info(line, e.Outcome, e.Name)
		}
	}
}
