package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"SteamSentinel/internal/analyzer"
	"SteamSentinel/internal/chart"
	"SteamSentinel/internal/collector"
	"SteamSentinel/internal/model"
	"SteamSentinel/internal/notifier"
	"SteamSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the evaluation cycle on the configured cron times and
// serves manual commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Analysis  analyzer.Config
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Snapshot  *recorder.SnapshotWriter
	Ctx       context.Context

	// Chart output, used only by the manual /chart command.
	ChartOutput string
	ChartEvents string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, analysis analyzer.Config,
	n notifier.Notifier, rec recorder.Recorder, snap *recorder.SnapshotWriter) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Analysis:  analysis,
		Notifier:  n,
		Recorder:  rec,
		Snapshot:  snap,
		Ctx:       ctx,
	}
}

// RegisterAll registers the morning and evening market checks.
func (s *Scheduler) RegisterAll(morningCron, eveningCron string) error {
	if _, err := s.Cron.AddFunc(morningCron, s.runCycle); err != nil {
		return fmt.Errorf("register morning check: %w", err)
	}
	if _, err := s.Cron.AddFunc(eveningCron, s.runCycle); err != nil {
		return fmt.Errorf("register evening check: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunCheckNow executes a market check immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunCheckNow() {
	s.runCycle()
}

func (s *Scheduler) runCycle() {
	log.Println("[INFO] scanning market")
	if _, err := s.check(true); err != nil {
		// One failed cycle never takes the process down; the next cron
		// invocation starts fresh.
		switch {
		case errors.Is(err, collector.ErrNoData):
			log.Printf("[WARN] no data this cycle: %v", err)
		case errors.Is(err, collector.ErrParse):
			log.Printf("[ERROR] parse failure: %v", err)
		case errors.Is(err, collector.ErrFetch):
			log.Printf("[ERROR] fetch failure: %v", err)
		default:
			log.Printf("[ERROR] cycle failed: %v", err)
		}
	}
}

// check runs one full evaluation cycle: fetch, backup, evaluate, notify,
// record. notify controls whether alerts are actually delivered.
func (s *Scheduler) check(notify bool) (*model.Report, error) {
	series, raw, err := s.Collector.Collect()
	if len(raw) > 0 {
		if werr := s.Snapshot.Write(raw); werr != nil {
			log.Printf("[ERROR] snapshot backup: %v", werr)
		}
	}
	if err != nil {
		return nil, err
	}

	report := analyzer.Evaluate(series, s.Analysis)
	if report == nil {
		return nil, fmt.Errorf("%w: empty series", collector.ErrNoData)
	}

	log.Printf("[INFO] data date %s, index %.4f", report.Date.Format("2006-01-02"), report.Value)
	for _, w := range report.Windows {
		log.Printf("[INFO]   %s", w.Status)
	}

	notified := false
	if notify && report.ShouldNotify() {
		var sendErr error
		if len(report.Triggered) > 0 {
			sendErr = s.Notifier.Notify(notifier.AlertTitle, notifier.FormatAlert(report), 20*time.Second)
		} else {
			// No favorable price, but the seasonal warning alone is worth a ping.
			sendErr = s.Notifier.Notify(notifier.SeasonalTitle, report.SeasonalWarning(), 15*time.Second)
		}
		if sendErr != nil {
			log.Printf("[ERROR] send notification: %v", sendErr)
		} else {
			notified = true
			log.Println("[INFO] notification sent")
		}
	}

	if err := s.Recorder.RecordCycle(recorder.NewCycleRecord(report, notified)); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}

	return report, nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "查看行情", "/check":
		report, err := s.check(true)
		if err != nil {
			return fmt.Sprintf("行情检查失败: %v", err)
		}
		return notifier.FormatStatus(report)
	case "查看走势", "/chart":
		return s.renderChart()
	case "查看记录", "/status":
		return s.lastCycleStatus()
	default:
		return "可用命令:\n• 查看行情 (/check)\n• 查看走势 (/chart)\n• 查看记录 (/status)"
	}
}

func (s *Scheduler) renderChart() string {
	series, _, err := s.Collector.Collect()
	if err != nil {
		return fmt.Sprintf("数据获取失败: %v", err)
	}
	events, err := chart.LoadEvents(s.ChartEvents)
	if err != nil {
		log.Printf("[WARN] load promo events: %v", err)
	}
	if err := chart.Render(series, events, s.ChartOutput); err != nil {
		return fmt.Sprintf("图表生成失败: %v", err)
	}
	return fmt.Sprintf("图表已生成: %s", s.ChartOutput)
}

func (s *Scheduler) lastCycleStatus() string {
	rec, err := s.Recorder.LastCycle()
	if err != nil {
		return fmt.Sprintf("查询失败: %v", err)
	}
	if rec == nil {
		return "暂无历史记录"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("最近一次检查 | 数据日期 %s\n", rec.DataDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("指数: %.4f | 触发窗口: %d | 已通知: %v\n", rec.Value, rec.TriggeredCount, rec.Notified))
	for _, w := range rec.Windows {
		b.WriteString(fmt.Sprintf("  %s(%d日/%s): 第%d低, 底部 %.1f%%\n",
			w.Label, w.Days, w.Mode, w.Rank, w.Quantile*100))
	}
	if rec.SeasonalSamples > 0 {
		b.WriteString(fmt.Sprintf("历史同期: %d年样本, 平均变化 %+.1f%%\n", rec.SeasonalSamples, rec.SeasonalMean*100))
	}
	return b.String()
}
