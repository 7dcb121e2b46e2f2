package nutrition

import "testing"

func TestTotalsAdd(t *testing.T) {
	var totals Totals
	totals = totals.Add(Analysis{Calories: 500, Protein: 30, Carbs: 40, Fat: 20})
	totals = totals.Add(Analysis{Calories: 250, Protein: 10, Carbs: 20, Fat: 15})

	if totals.Calories != 750 || totals.Protein != 40 || totals.Carbs != 60 || totals.Fat != 35 {
		t.Fatalf("totals = %+v, want {750 40 60 35}", totals)
	}
}

func TestRemaining(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"under_target", 1500, 2200, 700},
		{"at_target", 2200, 2200, 0},
		{"over_target", 2500, 2200, 0},
		{"zero_target", 100, 0, 0},
		{"empty_day", 0, 150, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Remaining(tc.current, tc.target); got != tc.want {
				t.Fatalf("Remaining(%v, %v) = %v, want %v", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestDefaultGoal(t *testing.T) {
	goal := DefaultGoal()
	if goal.Calories != 2200 || goal.Protein != 150 || goal.Carbs != 250 || goal.Fat != 70 {
		t.Fatalf("DefaultGoal() = %+v", goal)
	}
}
