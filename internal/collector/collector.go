package collector

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"SteamSentinel/internal/model"
)

// Collector fetches the raw payload and shapes it into the canonical series
// for one index category.
type Collector struct {
	Fetcher  Fetcher
	Category string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, category string) *Collector {
	return &Collector{Fetcher: fetcher, Category: category}
}

// Collect fetches the upstream payload and builds the canonical series.
// The raw payload is returned alongside so the caller can back it up
// verbatim. Returns ErrNoData when nothing survives the category filter.
func (c *Collector) Collect() (*model.Series, []byte, error) {
	records, raw, err := c.Fetcher.Fetch()
	if err != nil {
		return nil, nil, err
	}

	series := BuildSeries(records, c.Category)
	if len(series.Observations) == 0 {
		return nil, raw, fmt.Errorf("%w: category %q", ErrNoData, c.Category)
	}
	return series, raw, nil
}

// BuildSeries filters records to one category, drops malformed dates, sorts
// ascending and deduplicates dates (last record wins). The resulting ordering
// is what the trailing-window slicing relies on.
func BuildSeries(records []model.IndexRecord, category string) *model.Series {
	obs := make([]model.Observation, 0, len(records))
	for _, r := range records {
		if r.Type != category {
			continue
		}
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			log.Printf("[WARN] skipping record with bad date %q: %v", r.Date, err)
			continue
		}
		obs = append(obs, model.Observation{Date: d, Value: r.Value})
	}

	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })

	deduped := obs[:0]
	for _, o := range obs {
		if n := len(deduped); n > 0 && deduped[n-1].Date.Equal(o.Date) {
			deduped[n-1] = o
			continue
		}
		deduped = append(deduped, o)
	}

	return &model.Series{
		Category:     category,
		Observations: deduped,
		FetchedAt:    time.Now(),
	}
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Records []model.IndexRecord
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch() ([]model.IndexRecord, []byte, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	raw, err := json.Marshal(m.Records)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m.Records, raw, nil
}
