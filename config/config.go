package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces every variable this program reads, so that generic
// variables such as APP_ENV set for other tools never reach it.
const EnvPrefix = "STUDENTMGR_"

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
// Every value is optional: with no environment set the console behaves
// exactly as the classic menu program.
type Config struct {
	// Application
	App AppConfig

	// Interactive console
	Console ConsoleConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// ConsoleConfig holds settings of the interactive menu.
type ConsoleConfig struct {
	// CancelSentinel is the ID value that aborts Add and CalcAverage.
	CancelSentinel int

	// MissingAverage is shown in pass/fail listings for students without grades.
	MissingAverage string

	// AveragePrecision is the number of decimals used for averages (0-6).
	AveragePrecision int
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogOutput string // stderr, stdout, discard
}

// Load loads configuration from environment variables. On a validation error
// it returns the error; callers decide whether to fall back to Default.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		Console:       loadConsoleConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "studentmgr",
			Environment: EnvDevelopment,
			Version:     "0.1.0",
		},
		Console: ConsoleConfig{
			CancelSentinel:   -1,
			MissingAverage:   "N/A",
			AveragePrecision: 2,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "warn",
			LogOutput: "stderr",
		},
	}
}

func loadAppConfig() AppConfig {
	def := Default().App
	return AppConfig{
		Name:        getEnv(EnvPrefix+"APP_NAME", def.Name),
		Environment: Environment(getEnv(EnvPrefix+"APP_ENV", string(def.Environment))),
		Debug:       getEnvBool(EnvPrefix+"APP_DEBUG", false),
		Version:     getEnv(EnvPrefix+"APP_VERSION", def.Version),
	}
}

func loadConsoleConfig() ConsoleConfig {
	def := Default().Console
	return ConsoleConfig{
		CancelSentinel:   getEnvInt(EnvPrefix+"CONSOLE_CANCEL_SENTINEL", def.CancelSentinel),
		MissingAverage:   getEnv(EnvPrefix+"CONSOLE_MISSING_AVERAGE", def.MissingAverage),
		AveragePrecision: getEnvInt(EnvPrefix+"CONSOLE_AVERAGE_PRECISION", def.AveragePrecision),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	def := Default().Observability
	return ObservabilityConfig{
		LogLevel:  getEnv(EnvPrefix+"LOG_LEVEL", def.LogLevel),
		LogOutput: getEnv(EnvPrefix+"LOG_OUTPUT", def.LogOutput),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("%sAPP_ENV must be %q or %q", EnvPrefix, EnvDevelopment, EnvProduction))
	}

	if c.Console.AveragePrecision < 0 || c.Console.AveragePrecision > 6 {
		errs = append(errs, EnvPrefix+"CONSOLE_AVERAGE_PRECISION must be 0-6")
	}

	if strings.TrimSpace(c.Console.MissingAverage) == "" {
		errs = append(errs, EnvPrefix+"CONSOLE_MISSING_AVERAGE cannot be blank")
	}

	switch strings.ToLower(c.Observability.LogOutput) {
	case "stderr", "stdout", "discard":
	default:
		errs = append(errs, EnvPrefix+"LOG_OUTPUT must be stderr, stdout or discard")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// EffectiveLogLevel returns "debug" when STUDENTMGR_APP_DEBUG is set,
// STUDENTMGR_LOG_LEVEL otherwise.
func (c *Config) EffectiveLogLevel() string {
	if c.App.Debug {
		return "debug"
	}
	return c.Observability.LogLevel
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return defaultVal
	}
	return i
}
