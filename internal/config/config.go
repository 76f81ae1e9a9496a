package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		LandingsDir     string `yaml:"landings_dir"`
		StartYear       int    `yaml:"start_year"`
		EndYear         int    `yaml:"end_year"`
		WaterQualityCSV string `yaml:"water_quality_csv"`
		County          string `yaml:"county"`
	} `yaml:"data"`
	Analysis struct {
		Categories         []string `yaml:"categories"`
		TotalCategory      string   `yaml:"total_category"`
		LowOxygenThreshold float64  `yaml:"low_oxygen_threshold"`
	} `yaml:"analysis"`
	Output struct {
		ProcessedDir string `yaml:"processed_dir"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LANDINGS_DIR"); v != "" {
		cfg.Data.LandingsDir = v
	}
	if v := os.Getenv("WATER_QUALITY_CSV"); v != "" {
		cfg.Data.WaterQualityCSV = v
	}
	if v := os.Getenv("COUNTY"); v != "" {
		cfg.Data.County = v
	}
	if v := os.Getenv("TOTAL_CATEGORY"); v != "" {
		cfg.Analysis.TotalCategory = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Data.LandingsDir == "" {
		cfg.Data.LandingsDir = "data/landings"
	}
	if cfg.Data.StartYear == 0 {
		cfg.Data.StartYear = 1980
	}
	if cfg.Data.EndYear == 0 {
		cfg.Data.EndYear = 2002
	}
	if cfg.Data.WaterQualityCSV == "" {
		cfg.Data.WaterQualityCSV = "data/field_results.csv"
	}
	if cfg.Data.County == "" {
		cfg.Data.County = "Santa Barbara"
	}
	if len(cfg.Analysis.Categories) == 0 {
		cfg.Analysis.Categories = []string{"Finfish", "Crustaceans", "Echinoderms", "Mollusks"}
	}
	if cfg.Analysis.TotalCategory == "" {
		cfg.Analysis.TotalCategory = "Finfish"
	}
	if cfg.Analysis.LowOxygenThreshold == 0 {
		cfg.Analysis.LowOxygenThreshold = 5.0
	}
	if cfg.Output.ProcessedDir == "" {
		cfg.Output.ProcessedDir = "data/processed"
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if c.Data.StartYear > c.Data.EndYear {
		return fmt.Errorf("data.start_year %d is after data.end_year %d", c.Data.StartYear, c.Data.EndYear)
	}
	if c.Data.StartYear < 1900 {
		return fmt.Errorf("data.start_year %d is not a plausible year", c.Data.StartYear)
	}
	if c.Data.County == "" {
		return fmt.Errorf("data.county is required")
	}
	if c.Analysis.LowOxygenThreshold <= 0 {
		return fmt.Errorf("analysis.low_oxygen_threshold must be positive")
	}
	return nil
}
