package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

// EnvPrefix prefixes the environment variables read by viper.
const EnvPrefix = "PANGAN"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Sources
	AttributesPath    string
	AttributesSheet   string
	GeometryURL       string
	GeometryPath      string
	GeometryTimeout   time.Duration
	GeometryToken     string
	SynonymsFile      string
	LowMatchThreshold int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (PANGAN_ATTRIBUTES_PATH, ...)
// 3. .env files
// 4. Config file (./.pangan.yaml or ~/.pangan.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := newViper()
	if configFile := os.Getenv(EnvPrefix + "_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".pangan")
	}

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return fromViper(v), nil
}

// LoadConfigFile loads configuration from an explicit file, with the same
// environment overrides as LoadConfig. A missing or malformed file is an error.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError("config", "cannot read "+path, err)
	}

	return fromViper(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("attributes_path", constants.DefaultAttributesPath)
	v.SetDefault("geometry_url", constants.DefaultGeometryURL)
	v.SetDefault("geometry_timeout", constants.GeometryFetchTimeout)
	v.SetDefault("low_match_threshold", constants.LowMatchThreshold)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		AttributesPath:    v.GetString("attributes_path"),
		AttributesSheet:   v.GetString("attributes_sheet"),
		GeometryURL:       v.GetString("geometry_url"),
		GeometryPath:      v.GetString("geometry_path"),
		GeometryTimeout:   v.GetDuration("geometry_timeout"),
		GeometryToken:     v.GetString("geometry_token"),
		SynonymsFile:      v.GetString("synonyms_file"),
		LowMatchThreshold: v.GetInt("low_match_threshold"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", stringOr(v.GetString("log_format"), "auto")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", stringOr(v.GetString("log_output"), "stderr")),
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set are not overridden, so .env wins over .env.local
// only where .env.local is silent.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
