// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Repository root holding .taskflow.toml (may be empty)
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskflow)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Repository config takes precedence over global config, and the result
// is validated so out-of-range values fall back to defaults with a warning.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- repo (later takes precedence)
	for _, path := range []string{l.globalPath(), l.repoPath()} {
		if path == "" {
			continue
		}
		fileCfg, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, fileCfg)
	}

	base.Validate()
	return base, nil
}

// globalPath returns the global config file path, or "" when the
// config home is unknown.
func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// repoPath returns the repository config file path, or "" outside a repository.
func (l *Loader) repoPath() string {
	if l.repoRoot == "" {
		return ""
	}
	return domain.RepoRootConfigPath(l.repoRoot)
}

// layer is one parsed config file. set holds the "section.key" names
// that were present with a value of the right type.
type layer struct {
	cfg *domain.Config
	set map[string]bool
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *layer {
	res := &layer{cfg: &domain.Config{}, set: make(map[string]bool)}
	cfg := res.cfg
	var warnings []string

	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	// Typed setters record the key as set, or warn and leave it unset.
	str := func(sec, k string, v any, dst *string) {
		s, ok := v.(string)
		if !ok {
			warnf("[%s] %s must be a string", sec, k)
			return
		}
		*dst = s
		res.set[sec+"."+k] = true
	}
	integer := func(sec, k string, v any, dst *int) {
		n, ok := v.(int64)
		if !ok {
			warnf("[%s] %s must be an integer", sec, k)
			return
		}
		*dst = int(n)
		res.set[sec+"."+k] = true
	}
	number := func(sec, k string, v any, dst *float64) {
		switch n := v.(type) {
		case float64:
			*dst = n
		case int64:
			*dst = float64(n)
		default:
			warnf("[%s] %s must be a number", sec, k)
			return
		}
		res.set[sec+"."+k] = true
	}

	section := func(name string, value any, fn func(k string, v any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnf("[%s] must be a table", name)
			return
		}
		for k, v := range m {
			if !fn(k, v) {
				warnf("unknown key in [%s]: %s", name, k)
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "log":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "level":
					str(name, k, v, &cfg.Log.Level)
				case "file":
					str(name, k, v, &cfg.Log.File)
				default:
					return false
				}
				return true
			})
		case "seed":
			section(name, value, func(k string, v any) bool {
				if k != "file" {
					return false
				}
				str(name, k, v, &cfg.Seed.File)
				return true
			})
		case "dashboard":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "recent_tasks":
					integer(name, k, v, &cfg.Dashboard.RecentTasks)
				case "top_employees":
					integer(name, k, v, &cfg.Dashboard.TopEmployees)
				default:
					return false
				}
				return true
			})
		case "gesture":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "scroll_factor":
					number(name, k, v, &cfg.Gesture.ScrollFactor)
				case "rotation_factor":
					number(name, k, v, &cfg.Gesture.RotationFactor)
				case "offset_factor":
					number(name, k, v, &cfg.Gesture.OffsetFactor)
				default:
					return false
				}
				return true
			})
		case "notifications":
			section(name, value, func(k string, v any) bool {
				if k != "duration" {
					return false
				}
				str(name, k, v, &cfg.Notifications.Duration)
				return true
			})
		default:
			warnf("unknown section: %s", name)
		}
	}

	sort.Strings(warnings)
	cfg.Warnings = warnings
	return res
}

// mergeConfigs merges a file layer over base. Only keys present in the
// file override base, so an explicit zero (e.g. scroll_factor = 0) applies.
func mergeConfigs(base *domain.Config, override *layer) *domain.Config {
	result := *base
	result.Warnings = slices.Clone(base.Warnings)
	if len(override.cfg.Warnings) > 0 {
		result.Warnings = append(result.Warnings, override.cfg.Warnings...)
	}

	o := override.cfg
	apply := func(key string, fn func()) {
		if override.set[key] {
			fn()
		}
	}
	apply("log.level", func() { result.Log.Level = o.Log.Level })
	apply("log.file", func() { result.Log.File = o.Log.File })
	apply("seed.file", func() { result.Seed.File = o.Seed.File })
	apply("dashboard.recent_tasks", func() { result.Dashboard.RecentTasks = o.Dashboard.RecentTasks })
	apply("dashboard.top_employees", func() { result.Dashboard.TopEmployees = o.Dashboard.TopEmployees })
	apply("gesture.scroll_factor", func() { result.Gesture.ScrollFactor = o.Gesture.ScrollFactor })
	apply("gesture.rotation_factor", func() { result.Gesture.RotationFactor = o.Gesture.RotationFactor })
	apply("gesture.offset_factor", func() { result.Gesture.OffsetFactor = o.Gesture.OffsetFactor })
	apply("notifications.duration", func() { result.Notifications.Duration = o.Notifications.Duration })

	return &result
}

// Marshal renders cfg as TOML.
func Marshal(cfg *domain.Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
