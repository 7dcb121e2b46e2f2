// Package app provides the orchestration layer for the snapcal application.
//
// # Overview
//
// This package wires together configuration, logging, the food log store,
// the remote nutrition estimator, and the UI to create the complete
// snapcal TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Startup order
//
//  1. Load the TOML config (missing file means defaults).
//  2. Open the file-backed logger under the data directory.
//  3. Construct the Gemini estimator; a missing GEMINI_API_KEY aborts
//     startup with an actionable message.
//  4. Open the food log and read saved theme preferences.
//  5. Hand everything to ui.Run and block until exit.
//
// Shutdown via SIGINT or SIGTERM cancels the program context and is
// reported as a clean exit.
package app
