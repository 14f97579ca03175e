package risk

import (
	"testing"
)

func countGroups(groups []string) map[string]int {
	counts := make(map[string]int)
	for _, g := range groups {
		counts[g]++
	}
	return counts
}

func TestAssignGroups_SixDistinctScores(t *testing.T) {
	groups := AssignGroups([]float64{1, 2, 3, 4, 5, 6})

	want := []string{GroupLow, GroupLow, GroupMedium, GroupMedium, GroupHigh, GroupHigh}
	for i, g := range groups {
		if g != want[i] {
			t.Errorf("score %d: expected %s, got %s", i+1, want[i], g)
		}
	}

	counts := countGroups(groups)
	if counts[GroupLow] != 2 || counts[GroupMedium] != 2 || counts[GroupHigh] != 2 {
		t.Errorf("expected balanced tertiles, got %v", counts)
	}
}

func TestAssignGroups_MonotonicWithScore(t *testing.T) {
	scores := []float64{0.2, 1.7, 0.9, 3.4, 2.8, 0.5}
	groups := AssignGroups(scores)

	rank := map[string]int{GroupLow: 0, GroupMedium: 1, GroupHigh: 2}
	for i := range scores {
		for j := range scores {
			if scores[i] < scores[j] && rank[groups[i]] > rank[groups[j]] {
				t.Errorf("score %f got %s but higher score %f got %s", scores[i], groups[i], scores[j], groups[j])
			}
		}
	}
}

func TestAssignGroups_TwoDistinctScores(t *testing.T) {
	groups := AssignGroups([]float64{1, 2})

	if groups[0] != GroupLow || groups[1] != GroupHigh {
		t.Errorf("expected [Low High], got %v", groups)
	}
}

func TestAssignGroups_TwoDistinctWithRepeats(t *testing.T) {
	groups := AssignGroups([]float64{2, 1, 2, 2})

	want := []string{GroupHigh, GroupLow, GroupHigh, GroupHigh}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], groups[i])
		}
	}
}

func TestAssignGroups_UniformScores(t *testing.T) {
	groups := AssignGroups([]float64{5, 5})

	for i, g := range groups {
		if g != GroupMedium {
			t.Errorf("row %d: expected Medium, got %s", i, g)
		}
	}
}

func TestAssignGroups_InterpolatedBoundaries(t *testing.T) {
	// Tertile ranks land on h = (n-1)/3 = 1 and h = 2: the boundaries sit
	// exactly on the second and third values.
	groups := AssignGroups([]float64{1, 2, 3, 4})

	want := []string{GroupLow, GroupLow, GroupMedium, GroupHigh}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], groups[i])
		}
	}
}

func TestAssignGroups_ClusteredScoresCollapseBoundary(t *testing.T) {
	// The lower tertile boundary lands on the clustered value, so an edge
	// is dropped and only two groups survive.
	groups := AssignGroups([]float64{1, 1, 1, 1, 2, 9})

	counts := countGroups(groups)
	if counts[GroupMedium] != 0 {
		t.Errorf("expected no Medium group after boundary collapse, got %v", counts)
	}
	if counts[GroupLow] != 4 || counts[GroupHigh] != 2 {
		t.Errorf("expected 4 Low / 2 High, got %v", counts)
	}
}

func TestAssignGroups_Empty(t *testing.T) {
	if groups := AssignGroups(nil); groups != nil {
		t.Errorf("expected nil, got %v", groups)
	}
}
