// Package workflow owns the submission state machine: one explicit state value
// with enumerated transitions, written only by the Controller.
package workflow

import "github.com/spigell/cv-matcher/internal/matchservice"

const (
	MessageNoFileSelected = "Please select a CV file."
	MessageSystemError    = "System error. Please try again."
)

// ErrorKind tells apart the reasons a workflow ends up Failed.
type ErrorKind int

const (
	NoFileSelected ErrorKind = iota + 1
	TransportOrProtocolFailure
)

func (k ErrorKind) String() string {
	switch k {
	case NoFileSelected:
		return "no_file_selected"
	case TransportOrProtocolFailure:
		return "transport_or_protocol_failure"
	default:
		return "unknown"
	}
}

// State is exactly one of Idle, Submitting, Succeeded or Failed.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

// Submitting carries the name of the file that was actually sent.
type Submitting struct {
	File string
}

type Succeeded struct {
	Outcome Outcome
}

type Failed struct {
	Kind    ErrorKind
	Message string
}

func (Idle) Name() string       { return "idle" }
func (Submitting) Name() string { return "submitting" }
func (Succeeded) Name() string  { return "succeeded" }
func (Failed) Name() string     { return "failed" }

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Succeeded) isState()  {}
func (Failed) isState()     {}

// Outcome is the classified shape of a successful response: either Ranked or InvalidDocument.
type Outcome interface {
	isOutcome()
}

// Ranked holds results in the order the service returned them.
type Ranked struct {
	Results []matchservice.MatchResult
}

// InvalidDocument is the service's structured "could not analyze" answer.
type InvalidDocument struct {
	Reason string
	Record matchservice.MatchResult
}

func (Ranked) isOutcome()          {}
func (InvalidDocument) isOutcome() {}

// Classify turns a structurally valid response into an Outcome. A first record
// with a general score of exactly zero is the service's sentinel for an
// unanalyzable document; the rest of the list is then ignored.
func Classify(results []matchservice.MatchResult) Outcome {
	if len(results) > 0 && results[0].GeneralScore == 0 {
		return InvalidDocument{
			Reason: results[0].ReportSummary,
			Record: results[0],
		}
	}

	return Ranked{Results: results}
}
