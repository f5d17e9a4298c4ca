package model

import "time"

// IndexRecord is one raw record from the upstream analysis endpoint.
type IndexRecord struct {
	Type  string  `json:"type"`
	Date  string  `json:"date"` // "2006-01-02"
	Value float64 `json:"value"`
}

// Observation is a single day's index reading after filtering.
type Observation struct {
	Date  time.Time
	Value float64
}

// Series holds date-ascending observations of one index category.
// Dates are unique; the ordering is required for trailing-window slicing.
type Series struct {
	Category     string
	Observations []Observation
	FetchedAt    time.Time
}

// Latest returns the most recent observation, or false if the series is empty.
func (s *Series) Latest() (Observation, bool) {
	if len(s.Observations) == 0 {
		return Observation{}, false
	}
	return s.Observations[len(s.Observations)-1], true
}

// ValueByDate builds an exact calendar-date lookup keyed by "2006-01-02".
func (s *Series) ValueByDate() map[string]float64 {
	m := make(map[string]float64, len(s.Observations))
	for _, o := range s.Observations {
		m[o.Date.Format("2006-01-02")] = o.Value
	}
	return m
}
