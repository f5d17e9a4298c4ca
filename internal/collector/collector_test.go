package collector

import (
	"errors"
	"testing"

	"SteamSentinel/internal/model"
)

func TestBuildSeries_FilterSortDedupe(t *testing.T) {
	records := []model.IndexRecord{
		{Type: "10%", Date: "2025-06-03", Value: 6.2},
		{Type: "5%", Date: "2025-06-01", Value: 9.9}, // wrong category
		{Type: "10%", Date: "2025-06-01", Value: 6.0},
		{Type: "10%", Date: "not-a-date", Value: 1.0}, // malformed
		{Type: "10%", Date: "2025-06-02", Value: 6.1},
		{Type: "10%", Date: "2025-06-02", Value: 6.15}, // duplicate date, last wins
	}

	series := BuildSeries(records, "10%")
	if len(series.Observations) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(series.Observations))
	}
	for i := 1; i < len(series.Observations); i++ {
		if !series.Observations[i-1].Date.Before(series.Observations[i].Date) {
			t.Fatalf("observations not strictly ascending at %d", i)
		}
	}
	if series.Observations[1].Value != 6.15 {
		t.Errorf("duplicate date: expected last record to win (6.15), got %.2f", series.Observations[1].Value)
	}
}

func TestCollect_NoDataForCategory(t *testing.T) {
	col := NewCollector(&MockFetcher{Records: []model.IndexRecord{
		{Type: "5%", Date: "2025-06-01", Value: 9.9},
	}}, "10%")

	_, raw, err := col.Collect()
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if len(raw) == 0 {
		t.Error("raw payload must still be returned for backup")
	}
}

func TestCollect_FetchErrorPassedThrough(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: ErrFetch}, "10%")
	if _, _, err := col.Collect(); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestCollect_Success(t *testing.T) {
	col := NewCollector(&MockFetcher{Records: []model.IndexRecord{
		{Type: "10%", Date: "2025-06-01", Value: 6.0},
		{Type: "10%", Date: "2025-06-02", Value: 6.1},
	}}, "10%")

	series, raw, err := col.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Observations) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(series.Observations))
	}
	latest, ok := series.Latest()
	if !ok || latest.Value != 6.1 {
		t.Errorf("expected latest value 6.1, got %+v", latest)
	}
	if len(raw) == 0 {
		t.Error("expected raw payload")
	}
}
