// Package provision defines the result types produced by a provisioning run.
package provision

// Status classifies the outcome of a single pipeline step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult records the outcome of one pipeline step.
type StepResult struct {
	Name   string
	Status Status
	// Detail is a short human-readable note, e.g. created IDs.
	Detail string
	Err    error
}

// Options adjusts how the pipeline reacts to step failures.
type Options struct {
	// KeepGoing restores the original script's continue-on-error behavior:
	// failures are recorded but later steps still run.
	KeepGoing bool
}

// Report is the ordered outcome of a full run.
type Report struct {
	Results []StepResult
}

// Failed returns the number of steps that failed.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			n++
		}
	}
	return n
}

// FirstError returns the error of the first failed step, or nil.
func (r Report) FirstError() error {
	for _, res := range r.Results {
		if res.Status == StatusFailed && res.Err != nil {
			return res.Err
		}
	}
	return nil
}
