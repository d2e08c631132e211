package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/landing-motion/internal/logger"
)

// Counter holds the statistic animation settings.
type Counter struct {
	// Steps is the number of ticks of every counter animation.
	Steps int `yaml:"steps"`
	// TickInterval is the delay between two counter ticks.
	TickInterval time.Duration `yaml:"tick_interval"`
}

// Ring holds the circular progress indicator geometry.
type Ring struct {
	// Diameter is the outer size of the ring.
	Diameter float64 `yaml:"diameter"`
	// StrokeWidth is the width of the ring stroke.
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Gallery holds the project gallery settings.
type Gallery struct {
	// WindowSize is the number of cards shown at once.
	WindowSize int `yaml:"window_size"`
}

// Config holds the preview settings.
type Config struct {
	// LogLevel is the minimum level written to the log file.
	LogLevel string `yaml:"log_level"`
	// LogFile receives log output; empty discards it.
	LogFile string `yaml:"log_file"`
	// ContentFile is the YAML landing content; empty uses the embedded page.
	ContentFile string `yaml:"content_file"`
	// SnapshotFile is where the reader's position is kept between runs.
	SnapshotFile string `yaml:"snapshot_file"`
	// FrameInterval is the redraw period of the preview.
	FrameInterval time.Duration `yaml:"frame_interval"`
	// Counter holds the statistic animation settings.
	Counter Counter `yaml:"counter"`
	// Ring holds the circular progress indicator geometry.
	Ring Ring `yaml:"ring"`
	// Gallery holds the project gallery settings.
	Gallery Gallery `yaml:"gallery"`
	// Sound plays a chime with every notification.
	Sound bool `yaml:"sound"`
	// Watch reloads ContentFile when it changes.
	Watch bool `yaml:"watch"`
}

const (
	// DefaultConfigFilename is the default filename for preview settings.
	DefaultConfigFilename = "landing-preview.yaml"

	// DefaultSnapshotFilename is the default filename for the session JSON.
	DefaultSnapshotFilename = "landing-preview-session.json"

	// DefaultFrameInterval redraws at roughly 60 frames per second.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultCounterSteps is the number of ticks of a counter animation.
	DefaultCounterSteps = 50

	// DefaultTickInterval is the delay between counter ticks.
	DefaultTickInterval = 30 * time.Millisecond

	// DefaultRingDiameter and DefaultRingStrokeWidth describe the stat ring.
	DefaultRingDiameter    = 160
	DefaultRingStrokeWidth = 8

	// DefaultGalleryWindow is the number of gallery cards shown at once.
	DefaultGalleryWindow = 3

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for unknown log levels.
	errInvalidLogLevel = errors.New("unknown log level")
	// errInvalidRing is returned when the stroke does not fit inside the ring.
	errInvalidRing = errors.New("ring stroke width must be positive and smaller than the diameter")
	// errNegativeSetting is returned for negative counts and durations.
	errNegativeSetting = errors.New("setting must not be negative")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	cfg := new(Config)

	// Validate only fills defaults on an empty config.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates it.
// A missing file at the default location yields the defaults; a missing file at
// an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills defaults for unset fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	if settings.SnapshotFile == "" {
		settings.SnapshotFile = DefaultSnapshotFilename
	}

	if settings.FrameInterval < 0 || settings.Counter.TickInterval < 0 ||
		settings.Counter.Steps < 0 || settings.Gallery.WindowSize < 0 {
		return errNegativeSetting
	}

	if settings.FrameInterval == 0 {
		settings.FrameInterval = DefaultFrameInterval
	}

	if settings.Counter.Steps == 0 {
		settings.Counter.Steps = DefaultCounterSteps
	}

	if settings.Counter.TickInterval == 0 {
		settings.Counter.TickInterval = DefaultTickInterval
	}

	if settings.Gallery.WindowSize == 0 {
		settings.Gallery.WindowSize = DefaultGalleryWindow
	}

	if settings.Ring.Diameter == 0 && settings.Ring.StrokeWidth == 0 {
		settings.Ring = Ring{
			Diameter:    DefaultRingDiameter,
			StrokeWidth: DefaultRingStrokeWidth,
		}
	}

	if settings.Ring.StrokeWidth <= 0 || settings.Ring.StrokeWidth >= settings.Ring.Diameter {
		return errInvalidRing
	}

	return nil
}
