package domain

import "time"

// State is a node of the install workflow state machine.
type State int

const (
	// StateStart is the initial state.
	StateStart State = iota
	// StateValidatingEnv checks that the required executables are present.
	StateValidatingEnv
	// StateCheckingCache probes the local cache for an existing installation.
	StateCheckingCache
	// StateAcquiring clones the upstream repository.
	StateAcquiring
	// StateCheckedOut checks out the requested version.
	StateCheckedOut
	// StateInstalling runs the build tool install goal.
	StateInstalling
	// StateCleaning runs the build tool clean goal.
	StateCleaning
	// StateDone is the successful terminal state.
	StateDone
	// StateFailed is the failing terminal state.
	StateFailed
)

var stateNames = [...]string{
	StateStart:         "start",
	StateValidatingEnv: "validate",
	StateCheckingCache: "check-cache",
	StateAcquiring:     "clone",
	StateCheckedOut:    "checkout",
	StateInstalling:    "install",
	StateCleaning:      "clean",
	StateDone:          "done",
	StateFailed:        "failed",
}

// String returns the step name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// IsTerminal reports whether no transition leaves the state.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Outcome describes how a successful workflow run ended.
type Outcome int

const (
	// OutcomeNone means the run did not reach Done.
	OutcomeNone Outcome = iota
	// OutcomeSkipped means the version was already installed.
	OutcomeSkipped
	// OutcomeInstalled means the version was built and installed.
	OutcomeInstalled
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInstalled:
		return "installed"
	default:
		return "none"
	}
}

// Request is the input of one workflow run.
type Request struct {
	Version  PackageVersion
	BuildDir string
}

// Report records what a workflow run did.
type Report struct {
	Version     PackageVersion
	States      []State
	Outcome     Outcome
	WorkingTree WorkingTree
	FailedStep  State
	ExitCode    int
	Missing     []string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Enter appends s to the visited states.
func (r *Report) Enter(s State) {
	r.States = append(r.States, s)
}

// Current returns the last visited state.
func (r *Report) Current() State {
	if len(r.States) == 0 {
		return StateStart
	}
	return r.States[len(r.States)-1]
}

// Fail records step as the failing step and moves to StateFailed.
func (r *Report) Fail(step State, exitCode int) {
	r.FailedStep = step
	r.ExitCode = exitCode
	r.Enter(StateFailed)
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
