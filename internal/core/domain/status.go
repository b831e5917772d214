package domain

// ProcessingState is the phase of a processing attempt.
type ProcessingState string

const (
	// StatePending means processing has not started.
	StatePending ProcessingState = "pending"
	// StateProcessing means processing is underway.
	StateProcessing ProcessingState = "processing"
	// StateCompleted means processing finished successfully.
	StateCompleted ProcessingState = "completed"
	// StateFailed means processing was rejected.
	StateFailed ProcessingState = "failed"
)

// ProcessingStatus is the outcome of one processor run against one document.
// It is a return value and is never stored on a Document.
type ProcessingStatus struct {
	// State is the processing phase.
	State ProcessingState

	// Reason explains a failure. Empty unless State is StateFailed.
	Reason string
}

// Well-known statuses.
var (
	StatusPending    = ProcessingStatus{State: StatePending}
	StatusProcessing = ProcessingStatus{State: StateProcessing}
	StatusCompleted  = ProcessingStatus{State: StateCompleted}
)

// StatusFailed returns a failed status carrying reason.
func StatusFailed(reason string) ProcessingStatus {
	return ProcessingStatus{State: StateFailed, Reason: reason}
}

// IsTerminal returns true for completed and failed statuses.
func (s ProcessingStatus) IsTerminal() bool {
	return s.State == StateCompleted || s.State == StateFailed
}

// String returns the state, followed by the reason for failures.
func (s ProcessingStatus) String() string {
	if s.State == StateFailed && s.Reason != "" {
		return string(s.State) + ": " + s.Reason
	}
	return string(s.State)
}

// ProcessingResult records one document/processor pair of a batch run.
type ProcessingResult struct {
	// DocumentID identifies the processed document.
	DocumentID string

	// DocumentTitle is the title of the processed document.
	DocumentTitle string

	// Processor is the name of the processor that ran.
	Processor string

	// Status is the outcome. Failed whenever Err is set.
	Status ProcessingStatus

	// Err is the processor error, nil on success.
	Err error
}

// Failed returns true if the processor rejected the document.
func (r ProcessingResult) Failed() bool {
	return r.Err != nil
}
