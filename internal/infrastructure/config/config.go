package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	LedgerPath string `env:"SEKOLAH_LEDGER_PATH" envDefault:"tuition.txt"`
	RosterPath string `env:"SEKOLAH_ROSTER_PATH" envDefault:"data_student.txt"`
	DetailsDir string `env:"SEKOLAH_DETAILS_DIR" envDefault:"class"`

	// Admission & tuition
	BaseTuition       int64 `env:"SEKOLAH_BASE_TUITION"       envDefault:"15000000"`
	AdmissionCapacity int   `env:"SEKOLAH_ADMISSION_CAPACITY" envDefault:"2"`
	MaxApplicants     int   `env:"SEKOLAH_MAX_APPLICANTS"     envDefault:"100"`

	// Logging
	LogLevel  string `env:"SEKOLAH_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SEKOLAH_LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
