// Package config loads ggedit settings from TOML or YAML files and turns
// them into component options.
//
// The format is chosen by file extension: .toml uses go-toml, .yaml and
// .yml use yaml.v3. Keys absent from the file keep their defaults.
//
//	[text]
//	family = "Go"
//	size = 16
//
//	[editor]
//	blink_interval = "530ms"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid value")
)

// Format is a configuration file syntax.
type Format uint8

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatOf returns the format implied by a file name or a bare format
// name such as "yaml".
func FormatOf(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = "." + strings.ToLower(name)
	}
	switch ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Config holds every tunable of the library.
type Config struct {
	Text     TextConfig     `toml:"text" yaml:"text"`
	Editor   EditorConfig   `toml:"editor" yaml:"editor"`
	Viewport ViewportConfig `toml:"viewport" yaml:"viewport"`
	Resize   ResizeConfig   `toml:"resize" yaml:"resize"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// TextConfig selects the font style and the measurement backend.
type TextConfig struct {
	Family     string  `toml:"family" yaml:"family"`
	Size       float64 `toml:"size" yaml:"size"`
	LineHeight float64 `toml:"line_height" yaml:"line_height"`
	// Measurer is one of "face", "shaping", "cell" or "fixed".
	Measurer      string `toml:"measurer" yaml:"measurer"`
	Fallback      string `toml:"fallback" yaml:"fallback"`
	Language      string `toml:"language" yaml:"language"`
	CacheCapacity int    `toml:"cache_capacity" yaml:"cache_capacity"`
	// Fonts maps extra family names to TTF/OTF files.
	Fonts map[string]string `toml:"fonts" yaml:"fonts"`
}

// EditorConfig tunes the text editor.
type EditorConfig struct {
	TabWidth      int      `toml:"tab_width" yaml:"tab_width"`
	BlinkInterval Duration `toml:"blink_interval" yaml:"blink_interval"`
	AutoHeight    bool     `toml:"auto_height" yaml:"auto_height"`
	// Words is "ascii" or "unicode".
	Words string `toml:"words" yaml:"words"`
}

// ViewportConfig tunes the camera.
type ViewportConfig struct {
	Grid       bool    `toml:"grid" yaml:"grid"`
	GridCell   float64 `toml:"grid_cell" yaml:"grid_cell"`
	FitPadding float64 `toml:"fit_padding" yaml:"fit_padding"`
	PixelRatio float64 `toml:"pixel_ratio" yaml:"pixel_ratio"`
}

// ResizeConfig tunes the resize coordinator.
type ResizeConfig struct {
	// Mode is "window", "element" or "manual".
	Mode     string   `toml:"mode" yaml:"mode"`
	Throttle Duration `toml:"throttle" yaml:"throttle"`
}

// LogConfig sets the log level: "debug", "info", "warn", "error" or "off".
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, ErrUnknownFormat
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", format, err)
	}
	return cfg, cfg.Validate()
}

// Marshal encodes c in format.
func (c Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, ErrUnknownFormat
}
