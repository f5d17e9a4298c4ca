package notifier

import (
	"fmt"
	"strings"

	"SteamSentinel/internal/model"
)

// AlertTitle is the notification title for a triggered-window cycle,
// SeasonalTitle the one for a seasonal-warning-only cycle.
const (
	AlertTitle    = "Steam 挂刀行情提醒"
	SeasonalTitle = "Steam 历史预警"
)

// FormatAlert builds the notification body for a cycle with triggered
// windows: index value header, one ★ line per hit, then the seasonal warning
// after a blank line when present.
func FormatAlert(r *model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💰 发现好价！指数 %.4f\n", r.Value))
	b.WriteString(strings.Join(r.Triggered, "\n"))
	if w := r.SeasonalWarning(); w != "" {
		b.WriteString("\n\n")
		b.WriteString(w)
	}
	return b.String()
}

// FormatStatus renders the full per-window readout for manual queries.
func FormatStatus(r *model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 数据日期: %s | 当前指数: %.4f\n", r.Date.Format("2006-01-02"), r.Value))
	for _, w := range r.Windows {
		mark := "  "
		if w.Hit {
			mark = "★ "
		}
		b.WriteString(mark + w.Status + "\n")
	}
	if r.Seasonal != nil {
		b.WriteString(fmt.Sprintf("历史同期: %d年样本, 平均变化 %+.1f%%\n",
			len(r.Seasonal.Samples), r.Seasonal.Mean*100))
	}
	if w := r.SeasonalWarning(); w != "" {
		b.WriteString(w + "\n")
	}
	return b.String()
}
