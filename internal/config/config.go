package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Pipeline PipelineConfig
	Logger   LoggerConfig
}

type PipelineConfig struct {
	Name            string
	ArtifactDir     string
	TimestampFormat string
}

type LoggerConfig struct {
	Level  string
	Format string
}

// DefaultTimestampFormat names per-run artifact directories, e.g. 10_16_2026_14_05_09.
const DefaultTimestampFormat = "01_02_2006_15_04_05"

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("PIPELINE_NAME", "training-pipeline")
	v.SetDefault("PIPELINE_ARTIFACT_DIR", "artifact")
	v.SetDefault("PIPELINE_TIMESTAMP_FORMAT", DefaultTimestampFormat)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Pipeline: PipelineConfig{
			Name:            v.GetString("PIPELINE_NAME"),
			ArtifactDir:     v.GetString("PIPELINE_ARTIFACT_DIR"),
			TimestampFormat: v.GetString("PIPELINE_TIMESTAMP_FORMAT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
