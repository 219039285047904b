package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	RefSalt       string
	SiteURL       string
	MaxCandidates int
	MaxGrades     int
}

const (
	defaultMaxCandidates = 1000
	defaultMaxGrades     = 100
)

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("scrutin", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SiteURL, "site-url", "", "Public site URL used in invitation links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.RefSalt, "ref-salt", "", "Election ref salt (prefer env)")

	// Election limits
	fs.IntVar(&cfg.MaxCandidates, "max-candidates", 0, "Maximum candidates per election")
	fs.IntVar(&cfg.MaxGrades, "max-grades", 0, "Maximum grade levels per election")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3421 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = os.Getenv("SITE_URL")
		if cfg.SiteURL == "" {
			cfg.SiteURL = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}

	// Secrets - MUST be provided
	if cfg.RefSalt == "" {
		cfg.RefSalt = os.Getenv("REF_SALT")
	}
	if cfg.RefSalt == "" {
		return Config{}, errors.New("REF_SALT required")
	}

	if cfg.MaxCandidates == 0 {
		cfg.MaxCandidates = envInt("MAX_CANDIDATES", defaultMaxCandidates)
	}
	if cfg.MaxGrades == 0 {
		cfg.MaxGrades = envInt("MAX_GRADES", defaultMaxGrades)
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
