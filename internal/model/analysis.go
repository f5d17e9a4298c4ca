package model

import "time"

// EvalMode selects how a window's threshold is interpreted.
type EvalMode string

const (
	ModeRank     EvalMode = "rank"     // threshold is an integer rank ceiling
	ModeQuantile EvalMode = "quantile" // threshold is a fraction in [0,1]
)

// WindowRule configures one trailing-window check.
type WindowRule struct {
	Label     string   `yaml:"label"`
	Days      int      `yaml:"days"`
	Mode      EvalMode `yaml:"mode"`
	Threshold float64  `yaml:"threshold"`
}

// Position locates a value within a historical set.
// Rank 1 means cheapest; Quantile 0.0 means at or below everything seen.
type Position struct {
	Rank     int
	Quantile float64
}

// WindowResult is the outcome of evaluating one trailing window.
type WindowResult struct {
	Rule     WindowRule
	Position Position
	Hit      bool
	Status   string
}

// SeasonalSample is the week-over-anchor fractional change for one prior year.
// Positive Change means the index fell over that week.
type SeasonalSample struct {
	YearsBack int
	Change    float64
}

// SeasonalStats aggregates same-period drop samples across prior years.
// Warning is empty when the mean drop did not exceed the threshold.
type SeasonalStats struct {
	Samples []SeasonalSample
	Mean    float64
	Warning string
}

// Report is the full result of one evaluation cycle.
type Report struct {
	Date      time.Time
	Value     float64
	Windows   []WindowResult
	Triggered []string
	Seasonal  *SeasonalStats
}

// ShouldNotify reports whether the cycle warrants any notification:
// either a triggered window or a seasonal warning on its own.
func (r *Report) ShouldNotify() bool {
	return len(r.Triggered) > 0 || r.SeasonalWarning() != ""
}

// SeasonalWarning returns the seasonal warning text, or "" when none fired.
func (r *Report) SeasonalWarning() string {
	if r.Seasonal == nil {
		return ""
	}
	return r.Seasonal.Warning
}
