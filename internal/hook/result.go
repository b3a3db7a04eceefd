package hook

// Status classifies a hook run for the I/O shell.
type Status int

const (
	// StatusOutput means Text is written to stdout and the hook exits zero.
	StatusOutput Status = iota

	// StatusSkip means the hook exits zero with no output.
	StatusSkip

	// StatusFail means nothing is written to stdout and the shell decides
	// the exit code (non-zero for the prompt hook, zero for the gate).
	StatusFail
)

// Result is the tagged outcome of a hook run.
type Result struct {
	Status Status
	Text   string
	Err    error
}

// Output returns a Result carrying text for stdout.
func Output(text string) Result {
	return Result{Status: StatusOutput, Text: text}
}

// Skip returns a success-with-no-output Result.
func Skip() Result {
	return Result{Status: StatusSkip}
}

// Fail returns a failure Result.
func Fail(err error) Result {
	return Result{Status: StatusFail, Err: err}
}
