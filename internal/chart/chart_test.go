package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"SteamSentinel/internal/model"
)

func TestLoadEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.yaml")
	content := `events:
  - start: "2025-06-26"
    end: "2025-07-10"
    label: "夏季特卖"
    color: "#ffe8cc"
  - start: "2025-11-26"
    end: "2025-12-02"
    label: "秋季特卖"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	events, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Label != "夏季特卖" || events[0].Color != "#ffe8cc" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Color == "" {
		t.Error("missing color must get a default")
	}
}

func TestLoadEvents_MissingFileIsOptional(t *testing.T) {
	events, err := LoadEvents(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing calendar must not error: %v", err)
	}
	if events != nil {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestRender(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	series := &model.Series{Category: "10%"}
	for i := 0; i < 30; i++ {
		series.Observations = append(series.Observations, model.Observation{
			Date:  base.AddDate(0, 0, i),
			Value: 6.0 + 0.01*float64(i%7),
		})
	}
	events := []PromoEvent{{
		Start: base.AddDate(0, 0, 10),
		End:   base.AddDate(0, 0, 17),
		Label: "夏季特卖",
		Color: "#ffe8cc",
	}}

	path := filepath.Join(t.TempDir(), "out", "chart.svg")
	if err := Render(series, events, path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	for _, want := range []string{"<svg", "<polyline", "夏季特卖"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_TooFewPoints(t *testing.T) {
	series := &model.Series{Category: "10%", Observations: []model.Observation{
		{Date: time.Now(), Value: 6.0},
	}}
	if err := Render(series, nil, filepath.Join(t.TempDir(), "chart.svg")); err == nil {
		t.Error("expected error for a single-point series")
	}
}
