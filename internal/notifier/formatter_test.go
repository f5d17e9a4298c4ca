package notifier

import (
	"strings"
	"testing"
	"time"

	"SteamSentinel/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Date:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Value: 6.1234,
		Windows: []model.WindowResult{
			{
				Rule:     model.WindowRule{Label: "周", Days: 7, Mode: model.ModeRank, Threshold: 1},
				Position: model.Position{Rank: 1, Quantile: 0},
				Hit:      true,
				Status:   "近周排名: 第1低",
			},
			{
				Rule:     model.WindowRule{Label: "月", Days: 30, Mode: model.ModeQuantile, Threshold: 0.10},
				Position: model.Position{Rank: 5, Quantile: 0.25},
				Hit:      false,
				Status:   "近月位置: 底部 25.0%",
			},
		},
		Triggered: []string{"★ 触发周度好价 (近周排名: 第1低)"},
	}
}

func TestFormatAlert(t *testing.T) {
	r := sampleReport()
	body := FormatAlert(r)
	if !strings.Contains(body, "6.1234") {
		t.Errorf("alert missing index value: %q", body)
	}
	if !strings.Contains(body, "★ 触发周度好价") {
		t.Errorf("alert missing trigger line: %q", body)
	}
	if strings.Contains(body, "\n\n") {
		t.Errorf("no seasonal warning: blank separator must be absent: %q", body)
	}

	r.Seasonal = &model.SeasonalStats{
		Samples: []model.SeasonalSample{{YearsBack: 1, Change: 0.1}},
		Mean:    0.1,
		Warning: "⚠️ 历史预警: 过去1年同期，未来一周平均下跌 10.0%",
	}
	body = FormatAlert(r)
	if !strings.Contains(body, "\n\n⚠️") {
		t.Errorf("seasonal warning must follow a blank line: %q", body)
	}
}

func TestFormatStatus(t *testing.T) {
	out := FormatStatus(sampleReport())
	if !strings.Contains(out, "2025-06-10") {
		t.Errorf("status missing data date: %q", out)
	}
	if !strings.Contains(out, "★ 近周排名") {
		t.Errorf("hit window must be starred: %q", out)
	}
	if !strings.Contains(out, "  近月位置") {
		t.Errorf("non-hit window must be listed unstarred: %q", out)
	}
}
