package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"CoastWatch/internal/analyzer"
	"CoastWatch/internal/config"
	"CoastWatch/internal/export"
	"CoastWatch/internal/loader"
	"CoastWatch/internal/recorder"
	"CoastWatch/internal/report"
	"CoastWatch/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CoastWatch starting...")

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

	// Init sources
	landingSrc := loader.NewExcelSource(cfg.Data.LandingsDir, cfg.Data.StartYear, cfg.Data.EndYear)
	waterSrc := loader.NewCSVSource(cfg.Data.WaterQualityCSV, cfg.Data.County)
	log.Printf("[INFO] landing source: %s, water source: %s", landingSrc.Name(), waterSrc.Name())

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

	job := func() {
		if err := runAnalysis(cfg, landingSrc, waterSrc, rec); err != nil {
			log.Printf("[ERROR] analysis pass: %v", err)
		}
	}

	// Run-once mode
	if cfg.Schedule.Cron == "" {
		job()
		log.Println("[INFO] analysis complete")
		return
	}

	// Scheduled mode
	sched := scheduler.New(job)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] CoastWatch is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}

// runAnalysis loads both datasets and runs the full per-category pass:
// console report, CSV/JSON exports, and history recording.
func runAnalysis(cfg *config.Config, ls loader.LandingSource, ws loader.WaterSource, rec recorder.Recorder) error {
	ds, err := loader.Load(ls, ws)
	if err != nil {
		return err
	}
	if len(ds.Landings) == 0 || len(ds.Samples) == 0 {
		return fmt.Errorf("no data loaded: %d landing records, %d water samples", len(ds.Landings), len(ds.Samples))
	}

	low := 0
	for i := range ds.Samples {
		if ds.Samples[i].IsLowOxygen(cfg.Analysis.LowOxygenThreshold) {
			low++
		}
	}
	log.Printf("[INFO] %d of %d samples below %.1f mg/L", low, len(ds.Samples), cfg.Analysis.LowOxygenThreshold)

	a := analyzer.New(ds.Landings, ds.Samples)
	for _, category := range cfg.Analysis.Categories {
		fmt.Print(report.FormatReport(a, category, cfg.Analysis.TotalCategory))

		rows := a.JoinedYearlySeries(category)
		summaryPath := filepath.Join(cfg.Output.ProcessedDir, "yearly_summary_"+category+".csv")
		if err := export.WriteYearlyCSV(summaryPath, rows); err != nil {
			log.Printf("[ERROR] write yearly csv: %v", err)
		} else {
			log.Printf("[INFO] saved yearly summary to %s", summaryPath)
		}

		stats := a.SummaryStats(category, cfg.Analysis.TotalCategory)
		metrics := &export.Metrics{
			PearsonCorrelation: stats.Correlation,
			YearsAnalyzed:      stats.CommonYears,
			Interpretation:     report.Interpret(stats.Correlation),
		}
		metricsPath := filepath.Join(cfg.Output.ProcessedDir, "results_"+category+".json")
		if err := export.WriteMetricsJSON(metricsPath, metrics); err != nil {
			log.Printf("[ERROR] write metrics json: %v", err)
		} else {
			log.Printf("[INFO] saved metrics to %s", metricsPath)
		}

		if err := rec.RecordRun(&recorder.RunSnapshot{
			Category:       category,
			Correlation:    stats.Correlation,
			YearsAnalyzed:  stats.CommonYears,
			LandingRecords: stats.LandingRecords,
			WaterRecords:   stats.WaterRecords,
			GrandTotal:     a.GrandTotal(category),
			Interpretation: metrics.Interpretation,
		}); err != nil {
			log.Printf("[ERROR] record run: %v", err)
		}
		if err := rec.RecordYearlyRows(category, rows); err != nil {
			log.Printf("[ERROR] record yearly rows: %v", err)
		}
	}
	return nil
}
