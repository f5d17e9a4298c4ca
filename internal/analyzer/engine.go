package analyzer

import (
	"fmt"

	"SteamSentinel/internal/model"
)

// Config carries the analysis rules for one deployment. It is built once at
// startup and never mutated, so evaluations with different configurations can
// run side by side.
type Config struct {
	Windows           []model.WindowRule
	SeasonalYearsBack []int
	SeasonalThreshold float64
}

// DefaultWindows are the stock rules: the week requires the single lowest
// value, the longer windows relax to bottom 10/15/20 percent.
func DefaultWindows() []model.WindowRule {
	return []model.WindowRule{
		{Label: "周", Days: 7, Mode: model.ModeRank, Threshold: 1},
		{Label: "月", Days: 30, Mode: model.ModeQuantile, Threshold: 0.10},
		{Label: "季", Days: 90, Mode: model.ModeQuantile, Threshold: 0.15},
		{Label: "年", Days: 365, Mode: model.ModeQuantile, Threshold: 0.20},
	}
}

// DefaultConfig returns the stock analysis configuration: the four standard
// windows and a 2% mean seasonal-drop threshold over the past three years.
func DefaultConfig() Config {
	return Config{
		Windows:           DefaultWindows(),
		SeasonalYearsBack: []int{1, 2, 3},
		SeasonalThreshold: 0.02,
	}
}

// Evaluate runs the full analysis of the latest observation: every trailing
// window plus the seasonal check. Pure function of its inputs; returns nil
// only when the series is empty.
func Evaluate(series *model.Series, cfg Config) *model.Report {
	current, ok := series.Latest()
	if !ok {
		return nil
	}

	report := &model.Report{
		Date:    current.Date,
		Value:   current.Value,
		Windows: EvaluateWindows(series, current, cfg.Windows),
	}
	for _, w := range report.Windows {
		if w.Hit {
			report.Triggered = append(report.Triggered,
				fmt.Sprintf("★ 触发%s度好价 (%s)", w.Rule.Label, w.Status))
		}
	}
	report.Seasonal = DetectSeasonalDrop(series, current.Date, cfg.SeasonalYearsBack, cfg.SeasonalThreshold)

	return report
}
