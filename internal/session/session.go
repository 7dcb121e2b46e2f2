package session

import "snapcal/internal/nutrition"

// Phase is the view the user is currently in. Exactly one phase is
// active at a time; Dashboard is both the initial and the resting
// state every flow returns to.
type Phase int

const (
	Dashboard Phase = iota
	Acquiring
	Analyzing
	Reviewing
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case Dashboard:
		return "dashboard"
	case Acquiring:
		return "acquiring"
	case Analyzing:
		return "analyzing"
	case Reviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// State is the full session value. At most one candidate analysis and
// one acquired image exist at a time; both are cleared whenever the
// session returns to Dashboard. Ticket is a generation counter that
// identifies the outstanding estimation request so that a late result
// from an abandoned request cannot resurrect the session.
type State struct {
	Phase     Phase
	Candidate *nutrition.Analysis
	Image     []byte
	ErrMsg    string
	Ticket    int
}

// Event is a discrete user or I/O-completion input to the machine.
type Event interface{ isEvent() }

// StartCapture is the user initiating a capture from the dashboard.
type StartCapture struct{}

// CancelCapture is the user backing out of the acquire view.
type CancelCapture struct{}

// ImageAcquired carries a successfully acquired image.
type ImageAcquired struct{ Image []byte }

// AnalysisSucceeded carries the estimator's result for the request
// identified by Ticket.
type AnalysisSucceeded struct {
	Ticket int
	Result nutrition.Analysis
}

// AnalysisFailed reports an estimation failure for the request
// identified by Ticket.
type AnalysisFailed struct {
	Ticket  int
	Message string
}

// Confirm is the user accepting the reviewed analysis into the log.
type Confirm struct{}

// Discard is the user rejecting the reviewed analysis.
type Discard struct{}

// DismissError clears the dashboard error banner.
type DismissError struct{}

func (StartCapture) isEvent()      {}
func (CancelCapture) isEvent()     {}
func (ImageAcquired) isEvent()     {}
func (AnalysisSucceeded) isEvent() {}
func (AnalysisFailed) isEvent()    {}
func (Confirm) isEvent()           {}
func (Discard) isEvent()           {}
func (DismissError) isEvent()      {}

// Effect describes a side effect the caller must execute after a
// transition. The machine itself performs no I/O.
type Effect interface{ isEffect() }

// EffectAnalyze asks the caller to run the estimator on Image and feed
// the outcome back as AnalysisSucceeded/AnalysisFailed with the same
// ticket.
type EffectAnalyze struct {
	Ticket int
	Image  []byte
}

// EffectAppend asks the caller to construct a log entry from the
// confirmed analysis and append it to the store. Image may be nil.
type EffectAppend struct {
	Analysis nutrition.Analysis
	Image    []byte
}

func (EffectAnalyze) isEffect() {}
func (EffectAppend) isEffect()  {}

// Next is the pure transition function: (state, event) -> (state,
// effects). Events that are not valid in the current phase leave the
// state unchanged, which also guards against stale I/O completions.
func Next(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case StartCapture:
		// Capture can only be initiated from the resting state, so a
		// second request cannot start while one is in flight.
		if s.Phase != Dashboard {
			return s, nil
		}
		s.Phase = Acquiring
		s.ErrMsg = ""
		return s, nil

	case CancelCapture:
		if s.Phase != Acquiring {
			return s, nil
		}
		return toDashboard(s), nil

	case ImageAcquired:
		if s.Phase != Acquiring {
			return s, nil
		}
		s.Phase = Analyzing
		s.Image = ev.Image
		s.Ticket++
		return s, []Effect{EffectAnalyze{Ticket: s.Ticket, Image: ev.Image}}

	case AnalysisSucceeded:
		if s.Phase != Analyzing || ev.Ticket != s.Ticket {
			return s, nil
		}
		s.Phase = Reviewing
		result := ev.Result
		s.Candidate = &result
		return s, nil

	case AnalysisFailed:
		if s.Phase != Analyzing || ev.Ticket != s.Ticket {
			return s, nil
		}
		s = toDashboard(s)
		s.ErrMsg = ev.Message
		return s, nil

	case Confirm:
		if s.Phase != Reviewing || s.Candidate == nil {
			return s, nil
		}
		effect := EffectAppend{Analysis: *s.Candidate, Image: s.Image}
		return toDashboard(s), []Effect{effect}

	case Discard:
		if s.Phase != Reviewing {
			return s, nil
		}
		return toDashboard(s), nil

	case DismissError:
		s.ErrMsg = ""
		return s, nil
	}
	return s, nil
}

// toDashboard returns to the resting state, dropping any pending
// candidate and image.
func toDashboard(s State) State {
	s.Phase = Dashboard
	s.Candidate = nil
	s.Image = nil
	return s
}
