// Package config provides configuration types and defaults for conv1080.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"conv1080/internal/errors"
)

// Default constants
const (
	// DefaultInputDir is the source directory when none is given.
	DefaultInputDir = "."

	// DefaultOutputDirName is the directory created under the input
	// directory when no explicit output directory is configured.
	DefaultOutputDirName = "converted"

	// DefaultSubtitleFontSize is the font size used when burning in subtitles.
	DefaultSubtitleFontSize = 20

	// MaxSubtitleFontSize is the largest accepted subtitle font size.
	MaxSubtitleFontSize = 200
)

// DefaultVideoExtensions lists the input formats processed by default.
var DefaultVideoExtensions = []string{".mp4", ".mkv"}

// Config holds all configuration for a conversion run.
// It is fixed at process start and not mutated afterwards.
type Config struct {
	// Input/output paths
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"` // Empty means <InputDir>/converted
	LogDir    string `yaml:"log_dir"`    // Empty means <OutputDir>/logs

	// Subtitle burn-in
	SubtitleFontSize int `yaml:"subtitle_font_size"`

	// Recognized input extensions (leading dot, case-insensitive)
	VideoExtensions []string `yaml:"video_extensions"`

	// Output options
	Verbose bool `yaml:"verbose"`
	NoLog   bool `yaml:"no_log"`
}

// DefaultConfig returns a Config populated with documented defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:         DefaultInputDir,
		SubtitleFontSize: DefaultSubtitleFontSize,
		VideoExtensions:  append([]string(nil), DefaultVideoExtensions...),
	}
}

// NewConfig creates a Config for the given directories with default values.
func NewConfig(inputDir, outputDir, logDir string) *Config {
	cfg := DefaultConfig()
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	cfg.LogDir = logDir
	return cfg
}

// ResolvedOutputDir returns the configured output directory, or the
// auto-created "converted" directory under the input directory.
func (c *Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.InputDir, DefaultOutputDirName)
}

// ResolvedLogDir returns the configured log directory, or "logs" under
// the resolved output directory.
func (c *Config) ResolvedLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.ResolvedOutputDir(), "logs")
}

// NormalizedExtensions returns the configured extensions lowercased and
// with a guaranteed leading dot.
func (c *Config) NormalizedExtensions() []string {
	exts := make([]string, 0, len(c.VideoExtensions))
	for _, ext := range c.VideoExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// Validate checks the configuration for errors. Failures are reported as
// configuration-kind errors wrapping the matching sentinel.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.NewConfigError("input directory is empty", ErrMissingInputDir)
	}
	if c.SubtitleFontSize <= 0 || c.SubtitleFontSize > MaxSubtitleFontSize {
		return errors.NewConfigError(
			fmt.Sprintf("subtitle font size must be 1-%d, got %d", MaxSubtitleFontSize, c.SubtitleFontSize),
			ErrInvalidFontSize)
	}
	if len(c.NormalizedExtensions()) == 0 {
		return errors.NewConfigError("at least one video extension is required", ErrNoExtensions)
	}
	return nil
}
