package analyzer

import (
	"sort"

	"SteamSentinel/internal/model"
)

// ComputePosition locates current within the given historical values.
// Rank is the 1-based position of current in the ascending-sorted union of
// history and current; equal values resolve to the lowest (most favorable)
// rank. Quantile is the fraction of historical values strictly below current,
// over len(history) — equal values do not count as cheaper. With no history
// the value is best ever: rank 1, quantile 0.
func ComputePosition(current float64, history []float64) model.Position {
	if len(history) == 0 {
		return model.Position{Rank: 1, Quantile: 0}
	}

	all := make([]float64, 0, len(history)+1)
	all = append(all, history...)
	all = append(all, current)
	sort.Float64s(all)

	// First index >= current is the first occurrence of current itself.
	rank := sort.SearchFloat64s(all, current) + 1

	cheaper := 0
	for _, v := range history {
		if v < current {
			cheaper++
		}
	}

	return model.Position{
		Rank:     rank,
		Quantile: float64(cheaper) / float64(len(history)),
	}
}
