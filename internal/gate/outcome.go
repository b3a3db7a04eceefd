// Package gate implements the post-edit quality gate: probing a project for
// a supported type checker, running it under a wall-clock budget, and
// formatting its diagnostics into a bounded report.
package gate

// Status classifies one checker run.
type Status int

const (
	// Clean means the checker exited successfully or produced no
	// recognizable diagnostics.
	Clean Status = iota

	// Inconclusive means the checker hit its wall-clock budget. Callers
	// must treat it exactly like Clean: the gate prefers silence over a
	// slow or partial signal.
	Inconclusive

	// Errors means the checker produced at least one diagnostic line.
	Errors
)

// Outcome is the result of one checker invocation.
type Outcome struct {
	Status Status
	// Lines holds the raw diagnostic lines in original order.
	// Populated only when Status is Errors.
	Lines []string
}
