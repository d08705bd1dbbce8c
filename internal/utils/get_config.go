package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Session configuration
	JWTSecret          string `yaml:"JWT_SECRET"`
	DemoPassword       string `yaml:"DEMO_PASSWORD"`
	SimulatedLatencyMs int    `yaml:"SIMULATED_LATENCY_MS"`

	// Logging configuration
	LogMode string `yaml:"LOG_MODE"`
	LogFile string `yaml:"LOG_FILE"`

	// Registry configuration
	SeedDemoData bool `yaml:"SEED_DEMO_DATA"`
	LedgerBuffer int  `yaml:"LEDGER_BUFFER"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:            "8080",
		RateLimitMax:       20,
		JWTSecret:          "farm2fork-demo-secret",
		DemoPassword:       "demo123",
		SimulatedLatencyMs: 500,
		LogMode:            "development",
		LogFile:            "./logs/app.log",
		SeedDemoData:       true,
		LedgerBuffer:       200,
	}
}

// LoadConfig reads path over the defaults, then applies environment overrides.
// A missing file is not an error; loaded reports whether the file was read.
func LoadConfig(path string) (loaded bool, err error) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, eris.Wrapf(err, "config: read %s", path)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return false, eris.Wrapf(err, "config: parse %s", path)
		}
		loaded = true
	}

	applyEnv(&cfg)
	config = cfg
	return loaded, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("APP_PORT"); ok {
		cfg.AppPort = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	}
	if v, ok := os.LookupEnv("DEMO_PASSWORD"); ok {
		cfg.DemoPassword = v
	}
	if v, ok := os.LookupEnv("LOG_MODE"); ok {
		cfg.LogMode = v
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("SIMULATED_LATENCY_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SimulatedLatencyMs = n
		}
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitMax = n
		}
	}
	if v, ok := os.LookupEnv("LEDGER_BUFFER"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LedgerBuffer = n
		}
	}
	if v, ok := os.LookupEnv("SEED_DEMO_DATA"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedDemoData = b
		}
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "JWT_SECRET":
		return config.JWTSecret
	case "DEMO_PASSWORD":
		return config.DemoPassword
	case "SIMULATED_LATENCY_MS":
		return strconv.Itoa(config.SimulatedLatencyMs)
	case "LOG_MODE":
		return config.LogMode
	case "LOG_FILE":
		return config.LogFile
	case "SEED_DEMO_DATA":
		return getBoolString(config.SeedDemoData)
	case "LEDGER_BUFFER":
		return strconv.Itoa(config.LedgerBuffer)
	default:
		return ""
	}
}

// GetConfigInt returns fallback when key is unknown or not numeric.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}

func GetConfigBool(key string) bool {
	return GetConfig(key) == "true"
}

func GetConfigDurationMs(key string) time.Duration {
	return time.Duration(GetConfigInt(key, 0)) * time.Millisecond
}
