// Package nutrition defines the shared data model for snapcal: the
// estimator's per-photo Analysis, the persisted LogEntry, daily Goal
// targets, and the derived Totals used by the dashboard.
package nutrition
