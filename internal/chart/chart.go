// Package chart renders the index series to a static SVG for manually
// triggered runs. It consumes the same canonical series the analyzer does and
// annotates it with promo-event bands; it plays no part in the analysis itself.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"SteamSentinel/internal/model"
)

const (
	width   = 960
	height  = 480
	margin  = 50
	plotW   = width - 2*margin
	plotH   = height - 2*margin
	lineCol = "#2f6fb3"
)

// Render writes an SVG chart of the series to the given path.
func Render(series *model.Series, events []PromoEvent, path string) error {
	obs := series.Observations
	if len(obs) < 2 {
		return errors.New("not enough observations to chart")
	}

	minV, maxV := obs[0].Value, obs[0].Value
	for _, o := range obs {
		minV = math.Min(minV, o.Value)
		maxV = math.Max(maxV, o.Value)
	}
	if maxV == minV {
		maxV = minV + 1
	}
	first, last := obs[0].Date, obs[len(obs)-1].Date
	span := last.Sub(first)

	x := func(t time.Time) float64 {
		return margin + plotW*float64(t.Sub(first))/float64(span)
	}
	y := func(v float64) float64 {
		return margin + plotH*(1-(v-minV)/(maxV-minV))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", width, height)

	// Promo-event bands, clipped to the plotted date range.
	for _, e := range events {
		if e.End.Before(first) || e.Start.After(last) {
			continue
		}
		s, en := e.Start, e.End
		if s.Before(first) {
			s = first
		}
		if en.After(last) {
			en = last
		}
		x0, x1 := x(s), x(en)
		fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s" opacity="0.5"/>`+"\n",
			x0, margin, x1-x0, plotH, e.Color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="11" fill="#666">%s</text>`+"\n",
			x0+2, margin+12, e.Label)
	}

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`+"\n",
		margin, margin+plotH, margin+plotW, margin+plotH)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`+"\n",
		margin, margin, margin, margin+plotH)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#333">%.4f</text>`+"\n",
		4, margin+6, maxV)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#333">%.4f</text>`+"\n",
		4, margin+plotH, minV)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#333">%s</text>`+"\n",
		margin, height-20, first.Format("2006-01-02"))
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#333" text-anchor="end">%s</text>`+"\n",
		margin+plotW, height-20, last.Format("2006-01-02"))

	// Index curve
	points := make([]string, len(obs))
	for i, o := range obs {
		points[i] = fmt.Sprintf("%.1f,%.1f", x(o.Date), y(o.Value))
	}
	fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		strings.Join(points, " "), lineCol)

	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="14" fill="#333">%s 挂刀指数</text>`+"\n",
		margin, 24, series.Category)
	b.WriteString("</svg>\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
