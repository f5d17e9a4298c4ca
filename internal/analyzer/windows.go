package analyzer

import (
	"fmt"

	"SteamSentinel/internal/model"
)

// EvaluateWindows checks the current observation against each trailing-window
// rule. The history for a rule of N days is the half-open interval
// [current.Date-N, current.Date): the day at the left edge is included, the
// current day itself never is. Rules whose interval contains no observations
// are skipped entirely.
func EvaluateWindows(series *model.Series, current model.Observation, rules []model.WindowRule) []model.WindowResult {
	results := make([]model.WindowResult, 0, len(rules))

	for _, rule := range rules {
		start := current.Date.AddDate(0, 0, -rule.Days)

		var history []float64
		for _, o := range series.Observations {
			if !o.Date.Before(start) && o.Date.Before(current.Date) {
				history = append(history, o.Value)
			}
		}
		if len(history) == 0 {
			continue
		}

		pos := ComputePosition(current.Value, history)

		var hit bool
		var status string
		switch rule.Mode {
		case model.ModeRank:
			hit = pos.Rank <= int(rule.Threshold)
			status = fmt.Sprintf("近%s排名: 第%d低", rule.Label, pos.Rank)
		default:
			hit = pos.Quantile <= rule.Threshold
			status = fmt.Sprintf("近%s位置: 底部 %.1f%%", rule.Label, pos.Quantile*100)
		}

		results = append(results, model.WindowResult{
			Rule:     rule,
			Position: pos,
			Hit:      hit,
			Status:   status,
		})
	}

	return results
}
