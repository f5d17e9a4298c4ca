package chart

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PromoEvent is a named date range from the externally maintained sale
// calendar, drawn as a shaded band behind the index curve.
type PromoEvent struct {
	Start time.Time
	End   time.Time
	Label string
	Color string
}

type promoEventFile struct {
	Events []struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
		Label string `yaml:"label"`
		Color string `yaml:"color"`
	} `yaml:"events"`
}

// LoadEvents reads the promo calendar from a YAML file. A missing or empty
// path yields no events; the calendar is optional.
func LoadEvents(path string) ([]PromoEvent, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read events file: %w", err)
	}

	var file promoEventFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse events file: %w", err)
	}

	events := make([]PromoEvent, 0, len(file.Events))
	for i, e := range file.Events {
		start, err := time.Parse("2006-01-02", e.Start)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: bad start date %q", i, e.Start)
		}
		end, err := time.Parse("2006-01-02", e.End)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: bad end date %q", i, e.End)
		}
		color := e.Color
		if color == "" {
			color = "#fde2e2"
		}
		events = append(events, PromoEvent{Start: start, End: end, Label: e.Label, Color: color})
	}
	return events, nil
}
