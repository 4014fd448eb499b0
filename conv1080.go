// Package conv1080 provides a Go library for batch video normalization
// to 1080p H.264.
//
// conv1080 is an opinionated FFmpeg wrapper that converts a directory of
// videos to 1920x1080 MP4, preserving aspect ratio with black padding,
// picking the fastest available H.264 encoder (NVENC, AMF, QSV, or
// libx264), and burning in a matching SubRip subtitle file when one sits
// next to the video.
//
// Basic usage:
//
//	converter, err := conv1080.New(
//	    conv1080.WithInputDir("/videos"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch, err := converter.ConvertDirectory(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("converted %d of %d file(s)\n", batch.Converted, batch.TotalFiles)
package conv1080

import (
	"context"
	"fmt"

	"conv1080/internal/config"
	"conv1080/internal/discovery"
	"conv1080/internal/ffmpeg"
	"conv1080/internal/hwaccel"
	"conv1080/internal/logging"
	"conv1080/internal/processing"
	"conv1080/internal/reporter"
)

// Reporter receives progress events during conversion. Pass nil to any
// Convert method to run silently; use NewTerminalReporter for human
// console output.
type Reporter = reporter.Reporter

// NewTerminalReporter returns a Reporter that prints colored progress to
// the terminal.
func NewTerminalReporter() Reporter {
	return reporter.NewTerminalReporter()
}

// Status is the final outcome for one input file.
type Status = processing.Status

const (
	StatusSuccess = processing.StatusSuccess
	StatusSkipped = processing.StatusSkipped
	StatusFailed  = processing.StatusFailed
)

// Result contains the outcome of a single file conversion.
type Result struct {
	InputFile  string
	OutputFile string
	Status     Status
	Detail     string
}

// BatchResult contains the outcome of a batch conversion.
type BatchResult struct {
	Results    []Result
	Converted  int
	Skipped    int
	Failed     int
	TotalFiles int
}

// Converter is the main entry point for video conversion.
type Converter struct {
	config *config.Config
}

// Option configures the converter.
type Option func(*config.Config)

// New creates a new Converter with the given options.
func New(opts ...Option) (*Converter, error) {
	cfg := config.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// WithInputDir sets the directory scanned for video files.
func WithInputDir(dir string) Option {
	return func(c *config.Config) {
		c.InputDir = dir
	}
}

// WithOutputDir sets the output directory. When unset, a "converted"
// directory is created under the input directory.
func WithOutputDir(dir string) Option {
	return func(c *config.Config) {
		c.OutputDir = dir
	}
}

// WithLogDir sets the directory for run log files. When unset, a "logs"
// directory is created under the output directory.
func WithLogDir(dir string) Option {
	return func(c *config.Config) {
		c.LogDir = dir
	}
}

// WithSubtitleFontSize sets the font size used when burning in subtitles.
func WithSubtitleFontSize(size int) Option {
	return func(c *config.Config) {
		c.SubtitleFontSize = size
	}
}

// WithVideoExtensions sets the input file extensions to process.
func WithVideoExtensions(exts ...string) Option {
	return func(c *config.Config) {
		c.VideoExtensions = exts
	}
}

// WithVerbose enables debug-level messages in the run log.
func WithVerbose() Option {
	return func(c *config.Config) {
		c.Verbose = true
	}
}

// WithNoLog disables the run log file entirely.
func WithNoLog() Option {
	return func(c *config.Config) {
		c.NoLog = true
	}
}

// CheckPrerequisites verifies that ffmpeg and ffprobe are installed and
// runnable. Call it before converting to fail fast with a clear error.
func CheckPrerequisites() error {
	return ffmpeg.CheckPrerequisites()
}

// ConvertDirectory scans the configured input directory for video files
// and converts each one in sequence. Per-file failures do not abort the
// batch; they are reported in the returned BatchResult.
func (c *Converter) ConvertDirectory(ctx context.Context, rep Reporter) (*BatchResult, error) {
	files, err := discovery.FindVideoFiles(c.config.InputDir, c.config.NormalizedExtensions())
	if err != nil {
		return nil, err
	}
	return c.ConvertFiles(ctx, files, rep)
}

// ConvertFiles converts the given video files in sequence.
func (c *Converter) ConvertFiles(ctx context.Context, files []string, rep Reporter) (*BatchResult, error) {
	logger, err := logging.Setup(c.config.ResolvedLogDir(), c.config.Verbose, c.config.NoLog)
	if err != nil {
		return nil, err
	}
	defer func() { _ = logger.Close() }()

	orch := processing.New(c.config, hwaccel.NewDetector(), logger)
	batch, err := orch.ProcessVideos(ctx, files, rep)
	if err != nil {
		return nil, err
	}

	out := &BatchResult{
		Converted:  batch.Converted,
		Skipped:    batch.Skipped,
		Failed:     batch.Failed,
		TotalFiles: batch.TotalFiles,
	}
	for _, r := range batch.Results {
		out.Results = append(out.Results, Result{
			InputFile:  r.InputPath,
			OutputFile: r.OutputPath,
			Status:     r.Status,
			Detail:     r.Detail,
		})
	}
	return out, nil
}

// ConvertFile converts a single video file.
func (c *Converter) ConvertFile(ctx context.Context, input string, rep Reporter) (*Result, error) {
	batch, err := c.ConvertFiles(ctx, []string{input}, rep)
	if err != nil {
		return nil, err
	}
	if len(batch.Results) == 0 {
		return nil, fmt.Errorf("no files were converted")
	}
	r := batch.Results[0]
	return &r, nil
}
