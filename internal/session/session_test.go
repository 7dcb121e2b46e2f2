package session

import (
	"testing"

	"snapcal/internal/nutrition"
)

var saladAnalysis = nutrition.Analysis{
	FoodName:        "Salad",
	Calories:        250,
	Protein:         10,
	Carbs:           20,
	Fat:             15,
	Description:     "Mixed greens with vinaigrette.",
	PortionEstimate: "1 bowl",
}

// advance applies events in order and collects all emitted effects.
func advance(t *testing.T, s State, events ...Event) (State, []Effect) {
	t.Helper()
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Next(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

func TestCaptureFlowToReview(t *testing.T) {
	img := []byte{0xff, 0xd8}
	s, effects := advance(t, State{}, StartCapture{}, ImageAcquired{Image: img})

	if s.Phase != Analyzing {
		t.Fatalf("phase = %v, want analyzing", s.Phase)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	analyze, ok := effects[0].(EffectAnalyze)
	if !ok {
		t.Fatalf("effect = %T, want EffectAnalyze", effects[0])
	}
	if analyze.Ticket != s.Ticket {
		t.Fatalf("effect ticket = %d, want %d", analyze.Ticket, s.Ticket)
	}

	s, effects = advance(t, s, AnalysisSucceeded{Ticket: analyze.Ticket, Result: saladAnalysis})
	if s.Phase != Reviewing {
		t.Fatalf("phase = %v, want reviewing", s.Phase)
	}
	if len(effects) != 0 {
		t.Fatalf("success emitted %d effects, want none", len(effects))
	}
	if s.Candidate == nil || s.Candidate.FoodName != "Salad" {
		t.Fatalf("candidate = %+v, want salad analysis", s.Candidate)
	}
}

func TestConfirmEmitsAppendAndClearsCandidate(t *testing.T) {
	img := []byte{0xff, 0xd8}
	s, _ := advance(t, State{},
		StartCapture{}, ImageAcquired{Image: img},
		AnalysisSucceeded{Ticket: 1, Result: saladAnalysis})

	s, effects := advance(t, s, Confirm{})
	if s.Phase != Dashboard {
		t.Fatalf("phase = %v, want dashboard", s.Phase)
	}
	if s.Candidate != nil || s.Image != nil {
		t.Fatalf("candidate/image not cleared: %+v / %v", s.Candidate, s.Image)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1 append", len(effects))
	}
	appendEff, ok := effects[0].(EffectAppend)
	if !ok {
		t.Fatalf("effect = %T, want EffectAppend", effects[0])
	}
	if appendEff.Analysis != saladAnalysis {
		t.Fatalf("append analysis = %+v, want unchanged salad analysis", appendEff.Analysis)
	}
	if string(appendEff.Image) != string(img) {
		t.Fatalf("append image = %v, want original image", appendEff.Image)
	}
}

func TestDiscardLeavesNoEffects(t *testing.T) {
	s, _ := advance(t, State{},
		StartCapture{}, ImageAcquired{Image: []byte{1}},
		AnalysisSucceeded{Ticket: 1, Result: saladAnalysis})

	s, effects := advance(t, s, Discard{})
	if s.Phase != Dashboard {
		t.Fatalf("phase = %v, want dashboard", s.Phase)
	}
	if len(effects) != 0 {
		t.Fatalf("discard emitted %d effects, want none", len(effects))
	}
	if s.Candidate != nil {
		t.Fatal("candidate survived discard")
	}
}

func TestAnalysisFailureReturnsToDashboardWithError(t *testing.T) {
	s, _ := advance(t, State{}, StartCapture{}, ImageAcquired{Image: []byte{1}})

	s, effects := advance(t, s, AnalysisFailed{Ticket: s.Ticket, Message: "analysis failed"})
	if s.Phase != Dashboard {
		t.Fatalf("phase = %v, want dashboard", s.Phase)
	}
	if s.ErrMsg == "" {
		t.Fatal("error message empty after failure")
	}
	if len(effects) != 0 {
		t.Fatalf("failure emitted %d effects, want none", len(effects))
	}
	if s.Candidate != nil || s.Image != nil {
		t.Fatal("candidate state retained after failure")
	}
}

func TestErrorClearedOnEnteringAcquiring(t *testing.T) {
	s := State{ErrMsg: "analysis failed"}
	s, _ = Next(s, StartCapture{})
	if s.ErrMsg != "" {
		t.Fatalf("error = %q, want cleared on entering acquiring", s.ErrMsg)
	}
}

func TestStaleTicketIgnored(t *testing.T) {
	// First request abandoned, second in flight.
	s, _ := advance(t, State{},
		StartCapture{}, ImageAcquired{Image: []byte{1}},
		AnalysisFailed{Ticket: 1, Message: "timeout"},
		StartCapture{}, ImageAcquired{Image: []byte{2}})
	if s.Ticket != 2 {
		t.Fatalf("ticket = %d, want 2", s.Ticket)
	}

	// Late success for the abandoned first request must be dropped.
	next, effects := Next(s, AnalysisSucceeded{Ticket: 1, Result: saladAnalysis})
	if next.Phase != Analyzing || next.Candidate != nil || len(effects) != 0 {
		t.Fatalf("stale response applied: phase=%v candidate=%v effects=%d",
			next.Phase, next.Candidate, len(effects))
	}

	// Late failure for the abandoned request is equally inert.
	next, _ = Next(s, AnalysisFailed{Ticket: 1, Message: "late"})
	if next.Phase != Analyzing || next.ErrMsg != "" {
		t.Fatalf("stale failure applied: phase=%v err=%q", next.Phase, next.ErrMsg)
	}
}

func TestLateResponseAfterReturnToDashboardIgnored(t *testing.T) {
	s, _ := advance(t, State{}, StartCapture{}, ImageAcquired{Image: []byte{1}})
	ticket := s.Ticket

	// User abandons the analysis by a failure transition, then the
	// original response straggles in.
	s, _ = Next(s, AnalysisFailed{Ticket: ticket, Message: "timeout"})
	next, effects := Next(s, AnalysisSucceeded{Ticket: ticket, Result: saladAnalysis})
	if next.Phase != Dashboard || next.Candidate != nil || len(effects) != 0 {
		t.Fatalf("late response resurrected session: %+v", next)
	}
}

func TestCaptureOnlyFromDashboard(t *testing.T) {
	for _, phase := range []Phase{Acquiring, Analyzing, Reviewing} {
		s := State{Phase: phase}
		next, effects := Next(s, StartCapture{})
		if next.Phase != phase || len(effects) != 0 {
			t.Fatalf("StartCapture from %v moved to %v", phase, next.Phase)
		}
	}
}

func TestNoStoreMutationWithoutConfirmEdge(t *testing.T) {
	// Every event sequence below avoids the confirm edge; none may
	// emit an append effect.
	sequences := [][]Event{
		{StartCapture{}, CancelCapture{}},
		{StartCapture{}, ImageAcquired{Image: []byte{1}}, AnalysisFailed{Ticket: 1, Message: "x"}},
		{StartCapture{}, ImageAcquired{Image: []byte{1}}, AnalysisSucceeded{Ticket: 1, Result: saladAnalysis}, Discard{}},
		{Confirm{}, Discard{}, CancelCapture{}, AnalysisSucceeded{Ticket: 9, Result: saladAnalysis}},
	}
	for i, seq := range sequences {
		_, effects := advance(t, State{}, seq...)
		for _, eff := range effects {
			if _, ok := eff.(EffectAppend); ok {
				t.Fatalf("sequence %d emitted an append effect", i)
			}
		}
	}
}

func TestCancelCaptureReturnsToDashboard(t *testing.T) {
	s, _ := advance(t, State{}, StartCapture{})
	s, effects := advance(t, s, CancelCapture{})
	if s.Phase != Dashboard || len(effects) != 0 {
		t.Fatalf("cancel: phase=%v effects=%d", s.Phase, len(effects))
	}
}

func TestDismissErrorClearsBanner(t *testing.T) {
	s := State{ErrMsg: "analysis failed"}
	s, _ = Next(s, DismissError{})
	if s.ErrMsg != "" {
		t.Fatalf("error = %q, want empty", s.ErrMsg)
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		Dashboard: "dashboard",
		Acquiring: "acquiring",
		Analyzing: "analyzing",
		Reviewing: "reviewing",
		Phase(99): "unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
