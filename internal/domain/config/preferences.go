// Package config provides user preferences and user-facing error types.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/pelletier/go-toml/v2"
)

// Theme selects the color palette.
type Theme string

// Supported themes.
const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Preferences holds presenter settings read from the preferences file.
type Preferences struct {
	Theme     Theme   `toml:"theme"`
	Animate   bool    `toml:"animate"`
	FPS       int     `toml:"fps"`
	Stiffness float64 `toml:"stiffness"`
	Damping   float64 `toml:"damping"`
	Mouse     bool    `toml:"mouse"`
	LogLevel  string  `toml:"log_level"`
	Deck      string  `toml:"deck"`
}

// DefaultPreferences returns the settings used when no file exists.
// The spring constants match a stiffness of 300 and damping of 30 at unit mass.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:     ThemeAuto,
		Animate:   true,
		FPS:       60,
		Stiffness: 300,
		Damping:   30,
		Mouse:     true,
		LogLevel:  "info",
	}
}

// DefaultPreferencesPath returns ~/.pitchdeck/config.toml.
func DefaultPreferencesPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pitchdeck", "config.toml"), nil
}

// LoadPreferences reads preferences from path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read preferences: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&prefs); err != nil {
		return DefaultPreferences(), NewConfigParseError(path, err)
	}

	if err := prefs.Validate(); err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// Save writes the preferences as TOML, creating the parent directory.
func (p Preferences) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges and returns an *ErrorList on failure.
func (p Preferences) Validate() error {
	errs := NewErrorList()

	switch p.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		errs.AddValidation("theme", fmt.Sprintf("unknown theme %q", p.Theme), "Use auto, dark or light.")
	}
	if p.FPS < 1 || p.FPS > 240 {
		errs.AddValidation("fps", fmt.Sprintf("%d is out of range", p.FPS), "Use a frame rate between 1 and 240.")
	}
	if p.Stiffness <= 0 {
		errs.AddValidation("stiffness", "must be positive", "The default spring stiffness is 300.")
	}
	if p.Damping < 0 {
		errs.AddValidation("damping", "must not be negative", "The default spring damping is 30.")
	}
	if _, err := ports.ParseLevel(p.LogLevel); err != nil {
		errs.AddValidation("log_level", err.Error(), "Use debug, info, warn or error.")
	}

	return errs.AsError()
}

// Level returns the parsed log level, falling back to info.
func (p Preferences) Level() ports.Level {
	level, err := ports.ParseLevel(p.LogLevel)
	if err != nil {
		return ports.LevelInfo
	}
	return level
}

// FrameInterval returns the duration between animation frames.
func (p Preferences) FrameInterval() time.Duration {
	fps := p.FPS
	if fps < 1 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

// SpringParams converts stiffness and damping (unit mass) into the angular
// frequency and damping ratio used by a harmonic spring.
func (p Preferences) SpringParams() (angularFrequency, dampingRatio float64) {
	angularFrequency = math.Sqrt(p.Stiffness)
	if angularFrequency == 0 {
		return 0, 0
	}
	dampingRatio = p.Damping / (2 * angularFrequency)
	return angularFrequency, dampingRatio
}
