package commands

import "time"

// Names of the orchestration pipeline steps, in execution order.
const (
	StepSLAPromise       = "SLA_PROMISE"
	StepStockAllocation  = "STOCK_ALLOCATION"
	StepPartnerSelection = "PARTNER_SELECTION"
)

// StepStatus classifies how one orchestration pipeline step finished.
type StepStatus int

const (
	// StepStatusUnknown represents an invalid or undefined status.
	StepStatusUnknown StepStatus = iota

	// StepOK means the step produced its real result.
	StepOK

	// StepDegraded means the step failed on infrastructure and its
	// result was substituted with a simulated stand-in.
	StepDegraded

	// StepSkipped means the pipeline finished without running the step.
	StepSkipped
)

// String returns the wire form of the status.
func (s StepStatus) String() string {
	switch s {
	case StepOK:
		return "OK"
	case StepDegraded:
		return "DEGRADED"
	case StepSkipped:
		return "SKIPPED"
	}
	return "UNKNOWN"
}

// StepOutcome records how one pipeline step finished: its status, how
// long it ran, and the collaborator error behind a degraded result.
// Business outcomes such as a shortfall or a missing recommendation
// live in the step's result payload, not here.
type StepOutcome struct {
	Step     string
	Status   StepStatus
	Duration time.Duration
	Error    string
}

func newStepOutcome(step string, took time.Duration, err error) StepOutcome {
	outcome := StepOutcome{Step: step, Status: StepOK, Duration: took}
	if err != nil {
		outcome.Status = StepDegraded
		outcome.Error = err.Error()
	}
	return outcome
}
