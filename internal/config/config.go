package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/swiperow/internal/anim"
	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

const appName = "swiperow"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	DBPath string `koanf:"db_path"` // empty means the XDG data dir

	Swipe   SwipeConfig   `koanf:"swipe"`
	Gesture GestureConfig `koanf:"gesture"`
	List    ListConfig    `koanf:"list"`
	UI      UIConfig      `koanf:"ui"`
}

// SwipeConfig holds the row behaviour.
type SwipeConfig struct {
	Direction         string   `koanf:"direction"`          // "horizontal" (default) or "vertical"
	OvershootLeading  *bool    `koanf:"overshoot_leading"`  // default: true
	OvershootTrailing *bool    `koanf:"overshoot_trailing"` // default: true
	LeadingThreshold  *float64 `koanf:"leading_threshold"`  // 0-1, default: 0.5
	TrailingThreshold *float64 `koanf:"trailing_threshold"` // 0-1, default: 0.5
	LimitsEnabled     *bool    `koanf:"limits_enabled"`     // default: true
	Inertia           *float64 `koanf:"inertia"`            // seconds of velocity projected, default: 0.1

	Spring     SpringConfig     `koanf:"spring"`
	Transition TransitionConfig `koanf:"transition"`
}

// SpringConfig holds the settle spring. Setting stiffness or damping
// switches from bounciness/speed to explicit physics.
type SpringConfig struct {
	Mass                      float64  `koanf:"mass"`
	Stiffness                 float64  `koanf:"stiffness"`
	Damping                   float64  `koanf:"damping"`
	Bounciness                *float64 `koanf:"bounciness"` // default: 0
	Speed                     *float64 `koanf:"speed"`      // default: 5
	OvershootClamping         bool     `koanf:"overshoot_clamping"`
	RestSpeedThreshold        float64  `koanf:"rest_speed_threshold"`
	RestDisplacementThreshold float64  `koanf:"rest_displacement_threshold"`
}

// TransitionConfig holds imperative open/close animations.
type TransitionConfig struct {
	Duration time.Duration `koanf:"duration"` // e.g. "200ms"
	Easing   string        `koanf:"easing"`   // see anim.EasingNames, default: "linear"
}

// GestureConfig tunes pan recognition. Offsets are in terminal cells.
type GestureConfig struct {
	ActiveOffset      *float64 `koanf:"active_offset"`      // default: 1
	FailOffset        float64  `koanf:"fail_offset"`        // 0 disables
	LatchBegan        *bool    `koanf:"latch_began"`        // default: true
	VelocitySmoothing *float64 `koanf:"velocity_smoothing"` // 0-1, default: 0.5
}

// ListConfig holds list coordination.
type ListConfig struct {
	AllowMultiOpen *bool `koanf:"allow_multi_open"` // default: true
}

// UIConfig holds the terminal host settings.
type UIConfig struct {
	FPS           int    `koanf:"fps"`            // 1-240, default: 60
	LeadingLabel  string `koanf:"leading_label"`  // default: "Read"
	TrailingLabel string `koanf:"trailing_label"` // default: "Archive"
	Clip          *bool  `koanf:"clip"`           // default: true
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Swipe.Direction = strings.ToLower(strings.TrimSpace(cfg.Swipe.Direction))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Paths returns the config files Load reads, lowest priority first.
func Paths() []string {
	return getConfigPaths()
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/swiperow/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := gesture.ParseDirection(c.Swipe.Direction); !ok {
		errs = append(errs, invalid("swipe.direction %q", c.Swipe.Direction))
	}
	fractions := []struct {
		name string
		v    *float64
	}{
		{"swipe.leading_threshold", c.Swipe.LeadingThreshold},
		{"swipe.trailing_threshold", c.Swipe.TrailingThreshold},
		{"gesture.velocity_smoothing", c.Gesture.VelocitySmoothing},
	}
	for _, f := range fractions {
		if f.v != nil && (*f.v < 0 || *f.v > 1) {
			errs = append(errs, invalid("%s must be within [0,1], got %v", f.name, *f.v))
		}
	}
	if c.Swipe.Inertia != nil && *c.Swipe.Inertia < 0 {
		errs = append(errs, invalid("swipe.inertia must not be negative"))
	}
	if c.Swipe.Spring.Mass < 0 || c.Swipe.Spring.Stiffness < 0 || c.Swipe.Spring.Damping < 0 {
		errs = append(errs, invalid("swipe.spring mass, stiffness and damping must not be negative"))
	}
	if c.Swipe.Transition.Duration < 0 {
		errs = append(errs, invalid("swipe.transition.duration must not be negative"))
	}
	if c.Swipe.Transition.Easing != "" {
		if _, ok := anim.EasingByName(c.Swipe.Transition.Easing); !ok {
			errs = append(errs, invalid("swipe.transition.easing %q (want one of %s)",
				c.Swipe.Transition.Easing, strings.Join(anim.EasingNames(), ", ")))
		}
	}
	if c.Gesture.ActiveOffset != nil && *c.Gesture.ActiveOffset < 0 {
		errs = append(errs, invalid("gesture.active_offset must not be negative"))
	}
	if c.UI.FPS < 0 || c.UI.FPS > 240 {
		errs = append(errs, invalid("ui.fps must be within [1,240], got %d", c.UI.FPS))
	}

	return errors.Join(errs...)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// SpringConfig returns the settle spring with defaults applied.
func (c *Config) SpringConfig() anim.SpringConfig {
	sc := c.Swipe.Spring
	base := anim.BaseSpringConfig()
	if sc.Mass > 0 {
		base.Mass = sc.Mass
	}
	base.OvershootClamping = sc.OvershootClamping
	if sc.RestSpeedThreshold > 0 {
		base.RestSpeedThreshold = sc.RestSpeedThreshold
	}
	if sc.RestDisplacementThreshold > 0 {
		base.RestDisplacementThreshold = sc.RestDisplacementThreshold
	}

	if sc.Stiffness > 0 || sc.Damping > 0 {
		if sc.Stiffness > 0 {
			base.Stiffness = sc.Stiffness
		}
		if sc.Damping > 0 {
			base.Damping = sc.Damping
		}
		return base
	}
	return anim.SpringFromBouncinessAndSpeed(base, floatOr(sc.Bounciness, 0), floatOr(sc.Speed, 5))
}

// TimingConfig returns the transition timing with defaults applied.
func (c *Config) TimingConfig() anim.TimingConfig {
	tc := anim.DefaultTimingConfig()
	if c.Swipe.Transition.Duration > 0 {
		tc.Duration = c.Swipe.Transition.Duration
	}
	if e, ok := anim.EasingByName(c.Swipe.Transition.Easing); ok {
		tc.Easing = e
	}
	return tc
}

// SwipeOptions returns row options with defaults applied. Panel renderers
// are left for the caller.
func (c *Config) SwipeOptions() swipeable.Options {
	opts := swipeable.DefaultOptions()
	opts.Direction, _ = gesture.ParseDirection(c.Swipe.Direction)
	opts.OvershootLeading = boolOr(c.Swipe.OvershootLeading, true)
	opts.OvershootTrailing = boolOr(c.Swipe.OvershootTrailing, true)
	opts.LeadingThreshold = floatOr(c.Swipe.LeadingThreshold, swipeable.DefaultThreshold)
	opts.TrailingThreshold = floatOr(c.Swipe.TrailingThreshold, swipeable.DefaultThreshold)
	opts.LimitsEnabled = boolOr(c.Swipe.LimitsEnabled, true)
	opts.Inertia = floatOr(c.Swipe.Inertia, swipeable.DefaultInertia)
	opts.Spring = c.SpringConfig()
	opts.Transition = c.TimingConfig()
	opts.LatchBegan = boolOr(c.Gesture.LatchBegan, true)
	return opts
}

// TrackerConfig returns the pan recognizer settings with defaults applied.
func (c *Config) TrackerConfig() gesture.TrackerConfig {
	tc := gesture.DefaultTrackerConfig()
	tc.Direction, _ = gesture.ParseDirection(c.Swipe.Direction)
	tc.ActiveOffset = floatOr(c.Gesture.ActiveOffset, 1)
	tc.FailOffset = c.Gesture.FailOffset
	tc.Smoothing = floatOr(c.Gesture.VelocitySmoothing, tc.Smoothing)
	return tc
}

// AllowMultiOpen returns the list policy with its default applied.
func (c *Config) AllowMultiOpen() bool {
	return boolOr(c.List.AllowMultiOpen, true)
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.LeadingLabel == "" {
		cfg.LeadingLabel = "Read"
	}
	if cfg.TrailingLabel == "" {
		cfg.TrailingLabel = "Archive"
	}
	if cfg.Clip == nil {
		clip := true
		cfg.Clip = &clip
	}
	return cfg
}

// FrameInterval returns the duration of one display frame.
func (u UIConfig) FrameInterval() time.Duration {
	fps := u.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
