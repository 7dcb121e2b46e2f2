package nutrition

import "time"

// Analysis is the estimator's nutritional breakdown for a single photo.
// It is ephemeral: nothing is persisted until the user confirms it into
// a LogEntry. JSON tags match the persisted log layout.
type Analysis struct {
	FoodName        string  `json:"foodName"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	Description     string  `json:"description"`
	PortionEstimate string  `json:"portionEstimate"`
}

// LogEntry is a confirmed Analysis. Entries are immutable once created
// and are removed only by explicit deletion.
type LogEntry struct {
	Analysis
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	// ImageData holds the base64-encoded JPEG the entry was created
	// from, empty when the originating image is unavailable.
	ImageData string `json:"imageUrl,omitempty"`
}

// Goal holds the fixed daily nutrient targets.
type Goal struct {
	Calories float64 `toml:"calories"`
	Protein  float64 `toml:"protein"`
	Carbs    float64 `toml:"carbs"`
	Fat      float64 `toml:"fat"`
}

// DefaultGoal matches the built-in targets of the original tracker.
func DefaultGoal() Goal {
	return Goal{Calories: 2200, Protein: 150, Carbs: 250, Fat: 70}
}

// Totals is the field-wise sum over a set of log entries.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Add accumulates one analysis into the totals.
func (t Totals) Add(a Analysis) Totals {
	t.Calories += a.Calories
	t.Protein += a.Protein
	t.Carbs += a.Carbs
	t.Fat += a.Fat
	return t
}

// Remaining returns the nutrient amount left before the target is
// reached, clamped at zero. Exceeding a goal is a valid state; the
// display simply shows over 100% consumed.
func Remaining(current, target float64) float64 {
	if remaining := target - current; remaining > 0 {
		return remaining
	}
	return 0
}
