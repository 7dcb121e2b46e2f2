// Package estimator wraps the Gemini API call that turns a food photo
// into a structured nutrition estimate. The response schema pins the
// seven-field contract (name, calories, protein, carbs, fat,
// description, portion estimate); every failure mode collapses into a
// single generic estimation error for the caller.
package estimator
