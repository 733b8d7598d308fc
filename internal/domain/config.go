package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Warnings      []string            `toml:"-"`
	Log           LogConfig           `toml:"log"`
	Seed          SeedConfig          `toml:"seed"`
	Dashboard     DashboardConfig     `toml:"dashboard"`
	Gesture       GestureConfig       `toml:"gesture"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = logging disabled)
}

// SeedConfig holds seed data settings from [seed] section.
type SeedConfig struct {
	File string `toml:"file,omitempty"` // YAML seed file (empty = built-in sample data)
}

// DashboardConfig holds overview settings from [dashboard] section.
type DashboardConfig struct {
	RecentTasks  int `toml:"recent_tasks,omitempty"`
	TopEmployees int `toml:"top_employees,omitempty"`
}

// GestureConfig holds drag gesture factors from [gesture] section.
type GestureConfig struct {
	ScrollFactor   float64 `toml:"scroll_factor,omitempty"`   // Content scroll per unit of downward drag
	RotationFactor float64 `toml:"rotation_factor,omitempty"` // Handle rotation per unit of drag
	OffsetFactor   float64 `toml:"offset_factor,omitempty"`   // Handle offset per unit of pull
}

// NotificationsConfig holds toast settings from [notifications] section.
type NotificationsConfig struct {
	Duration string `toml:"duration,omitempty"` // Go duration string, e.g. "3s"
}

// Default configuration values.
const (
	DefaultLogLevel             = "info"
	DefaultRecentTasks          = 3
	DefaultTopEmployees         = 3
	DefaultScrollFactor         = 0.3
	DefaultRotationFactor       = 0.5
	DefaultOffsetFactor         = 0.5
	DefaultNotificationDuration = 3 * time.Second
)

// Directory and file names for taskflow.
const (
	AppDirName         = "taskflow"       // Directory name under the config home
	ConfigFileName     = "config.toml"    // Global config file name
	RootConfigFileName = ".taskflow.toml" // Config file name in repository root
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// RepoRootConfigPath returns the repository config path.
func RepoRootConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RootConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Dashboard: DashboardConfig{
			RecentTasks:  DefaultRecentTasks,
			TopEmployees: DefaultTopEmployees,
		},
		Gesture: GestureConfig{
			ScrollFactor:   DefaultScrollFactor,
			RotationFactor: DefaultRotationFactor,
			OffsetFactor:   DefaultOffsetFactor,
		},
		Notifications: NotificationsConfig{
			Duration: DefaultNotificationDuration.String(),
		},
	}
}

// NotificationDuration parses the toast duration, falling back to the default.
func (c *Config) NotificationDuration() time.Duration {
	d, err := time.ParseDuration(c.Notifications.Duration)
	if err != nil || d <= 0 {
		return DefaultNotificationDuration
	}
	return d
}

// Validate replaces out-of-range values with defaults and records a
// warning for each replacement.
func (c *Config) Validate() {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.warnf("log.level %q is not one of debug, info, warn, error; using %q", c.Log.Level, DefaultLogLevel)
		c.Log.Level = DefaultLogLevel
	}
	if c.Dashboard.RecentTasks <= 0 {
		c.warnf("dashboard.recent_tasks must be positive; using %d", DefaultRecentTasks)
		c.Dashboard.RecentTasks = DefaultRecentTasks
	}
	if c.Dashboard.TopEmployees <= 0 {
		c.warnf("dashboard.top_employees must be positive; using %d", DefaultTopEmployees)
		c.Dashboard.TopEmployees = DefaultTopEmployees
	}
	if c.Gesture.ScrollFactor < 0 {
		c.warnf("gesture.scroll_factor must not be negative; using %v", DefaultScrollFactor)
		c.Gesture.ScrollFactor = DefaultScrollFactor
	}
	if c.Gesture.OffsetFactor < 0 {
		c.warnf("gesture.offset_factor must not be negative; using %v", DefaultOffsetFactor)
		c.Gesture.OffsetFactor = DefaultOffsetFactor
	}
	if d, err := time.ParseDuration(c.Notifications.Duration); err != nil || d <= 0 {
		c.warnf("notifications.duration %q is not a positive duration; using %s", c.Notifications.Duration, DefaultNotificationDuration)
		c.Notifications.Duration = DefaultNotificationDuration.String()
	}
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
