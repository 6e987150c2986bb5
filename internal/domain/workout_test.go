package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want WorkoutStatus
		ok   bool
	}{
		{"pending", WorkoutStatusPending, true},
		{"in-progress", WorkoutStatusInProgress, true},
		{"completed", WorkoutStatusCompleted, true},
		{"not-started", WorkoutStatusPending, true},
		{"done", "", false},
		{"", "", false},
		{"Pending", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeStatus(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
