package service

import "time"

// Outcome labels reported for match lifecycle operations.
const (
	OutcomeSuccess            = "success"
	OutcomeValidationFailed   = "validation_failed"
	OutcomeNotFound           = "not_found"
	OutcomePreconditionFailed = "precondition_failed"
	OutcomeIOFailure          = "io_failure"
	OutcomeError              = "error"
)

// MatchMetrics records the outcome and latency of match lifecycle operations.
type MatchMetrics interface {
	ObserveConfirm(outcome string, elapsed time.Duration)
	ObserveRelease(outcome string, elapsed time.Duration)
	ObserveCandidates(count int)
}
