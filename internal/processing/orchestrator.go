// Package processing orchestrates the sequential conversion of a batch of
// video files.
package processing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"conv1080/internal/config"
	"conv1080/internal/errors"
	"conv1080/internal/ffmpeg"
	"conv1080/internal/ffprobe"
	"conv1080/internal/hwaccel"
	"conv1080/internal/logging"
	"conv1080/internal/planner"
	"conv1080/internal/reporter"
	"conv1080/internal/util"
)

// Status is the final outcome for one input file.
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusFailed
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// JobResult is the per-file outcome of a conversion run.
type JobResult struct {
	InputPath  string
	OutputPath string // Empty for skipped files without output
	Status     Status
	Detail     string // Skip reason or failure detail
}

// BatchResult aggregates the outcomes of one batch run.
type BatchResult struct {
	Results    []JobResult
	Converted  int
	Skipped    int
	Failed     int
	TotalFiles int
}

// ProbeFunc matches ffprobe.Probe. Injectable for tests.
type ProbeFunc func(path string) (*ffprobe.MediaInfo, error)

// ConvertFunc matches ffmpeg.RunConvert. Injectable for tests.
type ConvertFunc func(ctx context.Context, args []string, durationSecs float64, callback ffmpeg.ProgressCallback) ffmpeg.Result

// Orchestrator runs the conversion pipeline for a batch of files,
// strictly one file at a time.
type Orchestrator struct {
	cfg      *config.Config
	detector *hwaccel.Detector
	logger   *logging.Logger
	probe    ProbeFunc
	convert  ConvertFunc
}

// New creates an Orchestrator backed by the real ffprobe and ffmpeg tools.
func New(cfg *config.Config, detector *hwaccel.Detector, logger *logging.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		detector: detector,
		logger:   logger,
		probe:    ffprobe.Probe,
		convert:  ffmpeg.RunConvert,
	}
}

// NewWithDependencies allows injecting custom probe and convert functions
// (used for tests).
func NewWithDependencies(cfg *config.Config, detector *hwaccel.Detector, logger *logging.Logger, probe ProbeFunc, convert ConvertFunc) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		detector: detector,
		logger:   logger,
		probe:    probe,
		convert:  convert,
	}
}

// OutputPath returns the output file path for an input: base name plus
// "_1080p" (plus "_subs" when subtitles are burned in), always .mp4.
func OutputPath(inputPath, outputDir string, withSubs bool) string {
	name := util.GetFileStem(inputPath) + "_1080p"
	if withSubs {
		name += "_subs"
	}
	return filepath.Join(outputDir, name+".mp4")
}

// ProcessVideos converts each file in sequence. Per-file errors are
// recorded in that file's JobResult and never abort the batch; only setup
// failures (output directory creation) are returned as errors.
func (o *Orchestrator) ProcessVideos(ctx context.Context, files []string, rep reporter.Reporter) (BatchResult, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	batch := BatchResult{TotalFiles: len(files)}
	batchStart := time.Now()

	outputDir := o.cfg.ResolvedOutputDir()
	if err := util.EnsureDirectory(outputDir); err != nil {
		return batch, errors.NewIOError(fmt.Sprintf("failed to create output directory %s", outputDir), err)
	}

	// Detected once, reused for every file.
	enc := o.detector.Detect(ctx)
	rep.EncoderDetected(reporter.EncoderSummary{
		Label:    enc.Label,
		Codec:    enc.Codec,
		Hardware: enc.IsHardware(),
	})
	o.logger.Info("using encoder: %s (%s)", enc.Label, enc.Codec)

	var fileNames []string
	for _, f := range files {
		fileNames = append(fileNames, util.GetFilename(f))
	}
	rep.BatchStarted(reporter.BatchStartInfo{
		TotalFiles: len(files),
		FileList:   fileNames,
		OutputDir:  outputDir,
	})

	for i, inputPath := range files {
		if ctx.Err() != nil {
			rep.Warning(fmt.Sprintf("Batch cancelled: %v", ctx.Err()))
			o.logger.Warn("batch cancelled after %d file(s)", i)
			break
		}

		result := o.processFile(ctx, inputPath, i+1, len(files), outputDir, enc, rep)
		batch.Results = append(batch.Results, result)

		switch result.Status {
		case StatusSuccess:
			batch.Converted++
		case StatusSkipped:
			batch.Skipped++
		case StatusFailed:
			batch.Failed++
		}
	}

	rep.BatchComplete(reporter.BatchSummary{
		Converted:   batch.Converted,
		Skipped:     batch.Skipped,
		Failed:      batch.Failed,
		TotalFiles:  batch.TotalFiles,
		TotalTime:   time.Since(batchStart),
		OutputDir:   outputDir,
		FileResults: summaryResults(batch.Results),
	})
	o.logger.Info("batch complete: %d converted, %d skipped, %d failed of %d",
		batch.Converted, batch.Skipped, batch.Failed, batch.TotalFiles)

	return batch, nil
}

// processFile runs the full pipeline for one input file.
func (o *Orchestrator) processFile(ctx context.Context, inputPath string, index, total int, outputDir string, enc hwaccel.Choice, rep reporter.Reporter) JobResult {
	filename := util.GetFilename(inputPath)
	fileStart := time.Now()

	rep.FileStarted(reporter.FileContext{
		Index:      index,
		TotalFiles: total,
		Filename:   filename,
	})

	subtitlePath, hasSubtitle := planner.ResolveSubtitle(inputPath)

	meta, err := o.probe(inputPath)
	if err != nil {
		rep.Error(reporter.ReporterError{
			Title:      "Probe Error",
			Message:    fmt.Sprintf("could not read video information for %s", filename),
			Context:    err.Error(),
			Suggestion: "Check if the file is a valid video",
		})
		o.logger.Error("probe failed for %s: %v", inputPath, err)
		return JobResult{InputPath: inputPath, Status: StatusFailed, Detail: err.Error()}
	}

	subtitleName := ""
	if hasSubtitle {
		subtitleName = util.GetFilename(subtitlePath)
	}
	rep.SourceInfo(reporter.SourceSummary{
		Resolution:   fmt.Sprintf("%dx%d", meta.Width, meta.Height),
		Duration:     util.FormatDuration(meta.Duration),
		SubtitleFile: subtitleName,
	})
	o.logger.Debug("%s: %dx%d, %.1fs, subtitle=%q", filename, meta.Width, meta.Height, meta.Duration, subtitleName)

	plan := planner.Build(meta, subtitlePath, o.cfg.SubtitleFontSize)

	if plan.Skip {
		reason := "already 1920x1080 with no subtitles to embed"
		rep.FileSkipped(filename, reason)
		o.logger.Info("skipped %s: %s", filename, reason)
		return JobResult{InputPath: inputPath, Status: StatusSkipped, Detail: reason}
	}

	outputPath := OutputPath(inputPath, outputDir, plan.HasSubtitle())
	if util.FileExists(outputPath) {
		reason := "output already exists"
		rep.FileSkipped(filename, reason)
		o.logger.Info("skipped %s: %s", filename, reason)
		return JobResult{InputPath: inputPath, OutputPath: outputPath, Status: StatusSkipped, Detail: reason}
	}

	rep.PlanSummary(reporter.PlanSummary{
		NeedsScaling: plan.NeedsScaling,
		ScaledSize:   fmt.Sprintf("%dx%d", plan.ScaledWidth, plan.ScaledHeight),
		Padding:      fmt.Sprintf("%d,%d", plan.PadX, plan.PadY),
		BurnSubtitle: plan.HasSubtitle(),
		OutputFile:   util.GetFilename(outputPath),
	})

	args := ffmpeg.BuildArgs(inputPath, outputPath, plan.FilterGraph(), enc)
	o.logger.Debug("ffmpeg args for %s: %v", filename, args)

	rep.ConversionStarted(meta.Duration)
	result := o.convert(ctx, args, meta.Duration, func(progress ffmpeg.Progress) {
		rep.ConversionProgress(reporter.ProgressSnapshot{
			Percent: progress.Percent,
			FPS:     progress.FPS,
			Speed:   progress.Speed,
			ETA:     progress.ETA,
		})
	})

	if !result.Success {
		// Don't leave a half-written file behind.
		_ = os.Remove(outputPath)

		detail := ffmpeg.StderrTail(result.Stderr, 5)
		if detail == "" && result.Error != nil {
			detail = result.Error.Error()
		}
		rep.Error(reporter.ReporterError{
			Title:      "Encode Error",
			Message:    fmt.Sprintf("conversion failed for %s", filename),
			Context:    detail,
			Suggestion: "Check the log file for the full ffmpeg output",
		})
		o.logger.Error("conversion failed for %s: %v", inputPath, result.Error)
		return JobResult{InputPath: inputPath, OutputPath: outputPath, Status: StatusFailed, Detail: detail}
	}

	rep.FileComplete(reporter.FileOutcome{
		Filename:   filename,
		OutputFile: util.GetFilename(outputPath),
		Elapsed:    time.Since(fileStart),
	})
	o.logger.Info("converted %s -> %s in %s", filename, outputPath, time.Since(fileStart).Round(time.Second))

	return JobResult{InputPath: inputPath, OutputPath: outputPath, Status: StatusSuccess}
}

// summaryResults maps job results to the reporter's summary rows.
func summaryResults(results []JobResult) []reporter.FileResult {
	out := make([]reporter.FileResult, 0, len(results))
	for _, r := range results {
		var status reporter.FileStatus
		switch r.Status {
		case StatusSuccess:
			status = reporter.StatusSuccess
		case StatusSkipped:
			status = reporter.StatusSkipped
		default:
			status = reporter.StatusFailed
		}
		out = append(out, reporter.FileResult{
			Filename: util.GetFilename(r.InputPath),
			Status:   status,
			Detail:   r.Detail,
		})
	}
	return out
}
