package metrics

// Outcome labels shared by every observer that reports into a Recorder.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)
