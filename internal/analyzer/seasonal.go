package analyzer

import (
	"fmt"
	"time"

	"SteamSentinel/internal/model"
)

// DetectSeasonalDrop measures how the index moved over the week following the
// same calendar date in prior years. For each year offset it requires exact
// date matches for both the anchor and anchor+7d; offsets with missing data
// or an unconstructible anchor date contribute no sample. Returns nil when no
// offset produced a sample. Warning is set only when the mean drop exceeds
// the threshold.
func DetectSeasonalDrop(series *model.Series, currentDate time.Time, yearsBack []int, threshold float64) *model.SeasonalStats {
	lookup := series.ValueByDate()

	var samples []model.SeasonalSample
	for _, yb := range yearsBack {
		anchor, ok := seasonalAnchor(currentDate, yb)
		if !ok {
			continue
		}
		end := anchor.AddDate(0, 0, 7)

		startVal, sok := lookup[anchor.Format("2006-01-02")]
		endVal, eok := lookup[end.Format("2006-01-02")]
		if !sok || !eok || startVal == 0 {
			continue
		}

		// Positive change means the index fell over that week.
		samples = append(samples, model.SeasonalSample{
			YearsBack: yb,
			Change:    (startVal - endVal) / startVal,
		})
	}

	if len(samples) == 0 {
		return nil
	}

	sum := 0.0
	for _, s := range samples {
		sum += s.Change
	}
	stats := &model.SeasonalStats{
		Samples: samples,
		Mean:    sum / float64(len(samples)),
	}
	if stats.Mean > threshold {
		stats.Warning = fmt.Sprintf("⚠️ 历史预警: 过去%d年同期，未来一周平均下跌 %.1f%%",
			len(samples), stats.Mean*100)
	}
	return stats
}

// seasonalAnchor shifts date back by yearsBack whole years. time.Date
// normalizes Feb 29 to Mar 1 in non-leap years; such offsets are reported as
// not ok instead of silently shifting the anchor.
func seasonalAnchor(date time.Time, yearsBack int) (time.Time, bool) {
	anchor := time.Date(date.Year()-yearsBack, date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if anchor.Month() != date.Month() || anchor.Day() != date.Day() {
		return time.Time{}, false
	}
	return anchor, true
}
