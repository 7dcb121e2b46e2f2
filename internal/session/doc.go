// Package session implements the capture, analyze, review flow as a
// pure state machine.
//
// # Model
//
// The session is a value (State) advanced by discrete events through a
// single transition function:
//
//	next, effects := session.Next(current, event)
//
// Next never performs I/O. Store writes and estimator calls are
// returned as effect descriptions for the caller (the TUI layer) to
// execute, which keeps every transition unit-testable without mocks.
//
// # Phases
//
//	Dashboard --StartCapture--> Acquiring
//	Acquiring --CancelCapture--> Dashboard
//	Acquiring --ImageAcquired--> Analyzing   (emits EffectAnalyze)
//	Analyzing --AnalysisSucceeded--> Reviewing
//	Analyzing --AnalysisFailed--> Dashboard  (error banner set)
//	Reviewing --Confirm--> Dashboard         (emits EffectAppend)
//	Reviewing --Discard--> Dashboard
//
// # Late responses
//
// Every ImageAcquired increments a ticket that is carried on the
// resulting EffectAnalyze. Completion events whose ticket does not
// match the current one are ignored, so a response arriving after the
// user has left Analyzing cannot resurrect the abandoned session.
package session
