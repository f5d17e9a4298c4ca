package recorder

import (
	"time"

	"github.com/google/uuid"

	"SteamSentinel/internal/model"
)

// WindowRow is one window's outcome in a recorded cycle.
type WindowRow struct {
	Label    string
	Days     int
	Mode     string
	Rank     int
	Quantile float64
	Hit      bool
}

// CycleRecord holds everything persisted for one evaluation cycle.
type CycleRecord struct {
	ID              string
	DataDate        time.Time
	Value           float64
	Windows         []WindowRow
	TriggeredCount  int
	SeasonalSamples int
	SeasonalMean    float64
	Notified        bool
}

// NewCycleRecord flattens an evaluation report into a persistable record.
func NewCycleRecord(r *model.Report, notified bool) *CycleRecord {
	rec := &CycleRecord{
		ID:             uuid.NewString(),
		DataDate:       r.Date,
		Value:          r.Value,
		TriggeredCount: len(r.Triggered),
		Notified:       notified,
	}
	for _, w := range r.Windows {
		rec.Windows = append(rec.Windows, WindowRow{
			Label:    w.Rule.Label,
			Days:     w.Rule.Days,
			Mode:     string(w.Rule.Mode),
			Rank:     w.Position.Rank,
			Quantile: w.Position.Quantile,
			Hit:      w.Hit,
		})
	}
	if r.Seasonal != nil {
		rec.SeasonalSamples = len(r.Seasonal.Samples)
		rec.SeasonalMean = r.Seasonal.Mean
	}
	return rec
}

// Recorder persists evaluation history for later inspection.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	LastCycle() (*CycleRecord, error)
	Close() error
}
