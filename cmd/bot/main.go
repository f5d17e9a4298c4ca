package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"SteamSentinel/internal/collector"
	"SteamSentinel/internal/config"
	"SteamSentinel/internal/notifier"
	"SteamSentinel/internal/recorder"
	"SteamSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SteamSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewIFlowFetcher(cfg.DataSource.URL, cfg.DataSource.UserAgent, cfg.DataSource.Referer, cfg.Proxy)
	log.Printf("[INFO] data source: %s, category: %s", fetcher.Name(), cfg.DataSource.Category)
	col := collector.NewCollector(fetcher, cfg.DataSource.Category)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Raw payload backup
	snap := recorder.NewSnapshotWriter(cfg.Snapshot.Path)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, cfg.AnalysisConfig(), tn, rec, snap)
	sched.ChartOutput = cfg.Chart.OutputPath
	sched.ChartEvents = cfg.Chart.EventsFile
	if err := sched.RegisterAll(cfg.Schedule.MorningCron, cfg.Schedule.EveningCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing market check now")
		go sched.RunCheckNow()
	}

	log.Println("[INFO] SteamSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SteamSentinel stopped")
}
