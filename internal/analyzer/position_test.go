package analyzer

import "testing"

func TestComputePosition_EmptyHistory(t *testing.T) {
	pos := ComputePosition(42.0, nil)
	if pos.Rank != 1 || pos.Quantile != 0.0 {
		t.Errorf("empty history: expected (1, 0.0), got (%d, %.3f)", pos.Rank, pos.Quantile)
	}
}

func TestComputePosition_Boundaries(t *testing.T) {
	history := []float64{3.0, 1.0, 2.0}

	// Strictly below everything
	pos := ComputePosition(0.5, history)
	if pos.Rank != 1 {
		t.Errorf("lowest value: expected rank 1, got %d", pos.Rank)
	}
	if pos.Quantile != 0.0 {
		t.Errorf("lowest value: expected quantile 0.0, got %.3f", pos.Quantile)
	}

	// Strictly above everything
	pos = ComputePosition(9.0, history)
	if pos.Rank != len(history)+1 {
		t.Errorf("highest value: expected rank %d, got %d", len(history)+1, pos.Rank)
	}
	if pos.Quantile != 1.0 {
		t.Errorf("highest value: expected quantile 1.0, got %.3f", pos.Quantile)
	}
}

func TestComputePosition_RankWithinBounds(t *testing.T) {
	history := []float64{5, 3, 8, 1, 9, 2}
	for _, v := range []float64{0, 1, 4.5, 9, 100} {
		pos := ComputePosition(v, history)
		if pos.Rank < 1 || pos.Rank > len(history)+1 {
			t.Errorf("value %.1f: rank %d out of [1, %d]", v, pos.Rank, len(history)+1)
		}
	}
}

func TestComputePosition_FavorableTieBreak(t *testing.T) {
	// Equal values tie for the lowest rank, but do not count as cheaper
	// when computing the quantile. The asymmetry is deliberate.
	pos := ComputePosition(5.0, []float64{5.0, 5.0, 5.0})
	if pos.Rank != 1 {
		t.Errorf("all-ties: expected rank 1, got %d", pos.Rank)
	}
	if pos.Quantile != 0.0 {
		t.Errorf("all-ties: expected quantile 0.0, got %.3f", pos.Quantile)
	}
}

func TestComputePosition_QuantileDenominator(t *testing.T) {
	// Quantile divides by len(history), not the union size.
	pos := ComputePosition(9.0, []float64{10.0, 8.0})
	if pos.Rank != 2 {
		t.Errorf("expected rank 2 in sorted [8,9,10], got %d", pos.Rank)
	}
	if pos.Quantile != 0.5 {
		t.Errorf("expected quantile 1/2, got %.3f", pos.Quantile)
	}
}

func TestComputePosition_Deterministic(t *testing.T) {
	history := []float64{7.0, 7.0, 3.0, 11.0}
	first := ComputePosition(7.0, history)
	for i := 0; i < 5; i++ {
		got := ComputePosition(7.0, history)
		if got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}
