// Package ui provides the Bubble Tea terminal interface for snapcal.
//
// # Architecture
//
// The root Model wraps a pure session state machine (internal/session)
// and executes the effects its transitions emit: estimator calls run
// as tea commands, store writes run synchronously on the event loop.
// The Model never mutates session state directly; every user action and
// I/O completion becomes a session event fed through session.Next.
//
// # Views
//
// One view per session phase:
//
//   - Dashboard: daily totals against goals, the meal list newest
//     first, error banner, delete confirmation.
//   - Acquire: filepicker over the images directory, plus a typed-path
//     prompt ("o").
//   - Analyzing: spinner while the estimation request is in flight.
//   - Review: the returned estimate with confirm/discard actions.
//
// # Key Bindings
//
//   - c/s: snap a meal (dashboard)
//   - j/k: select entry, d/x: delete (with y/n confirmation)
//   - enter: confirm reviewed meal, d/esc: discard
//   - o: type a photo path (acquire view)
//   - T: cycle theme (persisted to prefs)
//   - h/?: help, q or Ctrl+C: quit
//
// # Late responses
//
// Estimation results carry the session ticket they were issued under;
// the state machine drops results whose ticket is stale, so a slow
// response cannot overwrite a session the user has already left.
package ui
