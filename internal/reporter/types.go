// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// EncoderSummary describes the encoder selected for the run.
type EncoderSummary struct {
	Label    string
	Codec    string
	Hardware bool
}

// BatchStartInfo contains batch start metadata.
type BatchStartInfo struct {
	TotalFiles int
	FileList   []string
	OutputDir  string
}

// FileContext identifies the current file within a batch.
type FileContext struct {
	Index      int // 1-based
	TotalFiles int
	Filename   string
}

// SourceSummary describes a probed input file.
type SourceSummary struct {
	Resolution   string
	Duration     string
	SubtitleFile string // Empty when no subtitle matched
}

// PlanSummary describes the derived conversion plan.
type PlanSummary struct {
	NeedsScaling bool
	ScaledSize   string
	Padding      string
	BurnSubtitle bool
	OutputFile   string
}

// ProgressSnapshot contains conversion progress information.
type ProgressSnapshot struct {
	Percent float32
	FPS     float32
	Speed   float32
	ETA     time.Duration
}

// FileOutcome contains the result of one converted file.
type FileOutcome struct {
	Filename   string
	OutputFile string
	Elapsed    time.Duration
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}

// FileStatus is the final per-file outcome in the batch summary.
type FileStatus string

const (
	StatusSuccess FileStatus = "success"
	StatusSkipped FileStatus = "skipped"
	StatusFailed  FileStatus = "failed"
)

// FileResult contains a per-file line of the batch summary.
type FileResult struct {
	Filename string
	Status   FileStatus
	Detail   string // Skip reason or failure detail
}

// BatchSummary contains batch completion information.
type BatchSummary struct {
	Converted   int
	Skipped     int
	Failed      int
	TotalFiles  int
	TotalTime   time.Duration
	OutputDir   string
	FileResults []FileResult
}
