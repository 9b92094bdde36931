package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrVaultRootRequired is returned by Load when no vault root is configured.
var ErrVaultRootRequired = errors.New("vault.root is required")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Tasks timeline specifics
	Vault      VaultConfig
	Timeline   TimelineConfig
	QuickEntry QuickEntryConfig
	Cache      CacheConfig

	// Optional calendar export
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// VaultConfig points at the directory of markdown notes holding the tasks.
type VaultConfig struct {
	Root        string
	DefaultFile string // note that receives new tasks when none is chosen
	Timezone    string // IANA name used as "now" for relative dates
}

type TimelineConfig struct {
	DaysBefore     int
	DaysAfter      int
	ForwardOverdue bool // show overdue tasks under today
}

type QuickEntryConfig struct {
	RateLimitPerMin int
}

type CacheConfig struct {
	Size int // parsed notes kept in memory
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string // installed-app token written by scripts/gcal-auth
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/tasks-timeline/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/tasks-timeline/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Vault
	cfg.Vault.Root = v.GetString("vault.root")
	cfg.Vault.DefaultFile = v.GetString("vault.default_file")
	cfg.Vault.Timezone = v.GetString("vault.timezone")
	if root := v.GetString("vault_root"); root != "" {
		cfg.Vault.Root = root
	}

	// Timeline & quick entry
	cfg.Timeline.DaysBefore = v.GetInt("timeline.days_before")
	cfg.Timeline.DaysAfter = v.GetInt("timeline.days_after")
	cfg.Timeline.ForwardOverdue = v.GetBool("timeline.forward_overdue")
	cfg.QuickEntry.RateLimitPerMin = v.GetInt("quick_entry.rate_limit_per_min")
	cfg.Cache.Size = v.GetInt("cache.size")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if cfg.Vault.Root == "" {
		return nil, ErrVaultRootRequired
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("vault.timezone", "UTC")
	v.SetDefault("timeline.days_before", 7)
	v.SetDefault("timeline.days_after", 14)
	v.SetDefault("timeline.forward_overdue", true)
	v.SetDefault("quick_entry.rate_limit_per_min", 600)
	v.SetDefault("cache.size", 256)
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}
