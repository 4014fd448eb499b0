package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"conv1080/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu         sync.Mutex
	progress   *progressbar.ProgressBar
	maxPercent float32
	cyan       *color.Color
	green      *color.Color
	yellow     *color.Color
	red        *color.Color
	magenta    *color.Color
	bold       *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
	r.maxPercent = 0
}

func (r *TerminalReporter) EncoderDetected(summary EncoderSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("ENCODER")
	mode := "software"
	if summary.Hardware {
		mode = "hardware"
	}
	r.printLabel(9, "Encoder:", fmt.Sprintf("%s (%s, %s)", summary.Label, summary.Codec, mode))
}

func (r *TerminalReporter) BatchStarted(info BatchStartInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("BATCH")
	r.printLabel(9, "Files:", fmt.Sprintf("%d", info.TotalFiles))
	r.printLabel(9, "Output:", info.OutputDir)
}

func (r *TerminalReporter) FileStarted(fctx FileContext) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.cyan.Printf("[%d/%d] %s\n", fctx.Index, fctx.TotalFiles, fctx.Filename)
}

func (r *TerminalReporter) SourceInfo(summary SourceSummary) {
	r.printLabel(11, "Resolution:", summary.Resolution)
	r.printLabel(11, "Duration:", summary.Duration)
	if summary.SubtitleFile != "" {
		r.printLabel(11, "Subtitles:", summary.SubtitleFile)
	} else {
		r.printLabel(11, "Subtitles:", color.New(color.Faint).Sprint("none found"))
	}
}

func (r *TerminalReporter) PlanSummary(summary PlanSummary) {
	if summary.NeedsScaling {
		r.printLabel(11, "Scale:", fmt.Sprintf("%s, pad %s", summary.ScaledSize, summary.Padding))
	}
	if summary.BurnSubtitle {
		r.printLabel(11, "Burn-in:", "subtitles hardcoded into video")
	}
	r.printLabel(11, "Output:", summary.OutputFile)
}

func (r *TerminalReporter) ConversionStarted(durationSecs float64) {
	r.finishProgress()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Converting [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) ConversionProgress(progress ProgressSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	// The bar only moves forward; stale lines from the stream are ignored.
	if progress.Percent < r.maxPercent {
		return
	}
	r.maxPercent = progress.Percent

	_ = r.progress.Set64(int64(progress.Percent))
	r.progress.Describe(fmt.Sprintf(" %.0f fps, %.2fx", progress.FPS, progress.Speed))
}

func (r *TerminalReporter) FileComplete(outcome FileOutcome) {
	r.finishProgress()
	fmt.Printf("  %s %s (%s)\n",
		r.green.Sprint("✔"),
		outcome.OutputFile,
		util.FormatDuration(outcome.Elapsed.Seconds()))
}

func (r *TerminalReporter) FileSkipped(filename, reason string) {
	r.finishProgress()
	fmt.Printf("  %s %s: %s\n", r.yellow.Sprint("↷"), filename, reason)
}

func (r *TerminalReporter) Warning(message string) {
	r.finishProgress()
	fmt.Printf("  %s %s\n", r.yellow.Sprint("!"), message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()
	_, _ = r.red.Printf("  ✖ %s: %s\n", err.Title, err.Message)
	if err.Context != "" {
		fmt.Printf("    %s\n", err.Context)
	}
	if err.Suggestion != "" {
		fmt.Printf("    %s\n", r.magenta.Sprint(err.Suggestion))
	}
}

func (r *TerminalReporter) BatchComplete(summary BatchSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("SUMMARY")
	r.printLabel(11, "Converted:", fmt.Sprintf("%d", summary.Converted))
	r.printLabel(11, "Skipped:", fmt.Sprintf("%d", summary.Skipped))
	if summary.Failed > 0 {
		r.printLabel(11, "Failed:", r.red.Sprintf("%d", summary.Failed))
	} else {
		r.printLabel(11, "Failed:", "0")
	}
	r.printLabel(11, "Total:", fmt.Sprintf("%d file(s) in %s", summary.TotalFiles, util.FormatDuration(summary.TotalTime.Seconds())))
	r.printLabel(11, "Output:", summary.OutputDir)

	for _, fr := range summary.FileResults {
		switch fr.Status {
		case StatusSuccess:
			fmt.Printf("  %s %s\n", r.green.Sprint("✔"), fr.Filename)
		case StatusSkipped:
			fmt.Printf("  %s %s (%s)\n", r.yellow.Sprint("↷"), fr.Filename, fr.Detail)
		case StatusFailed:
			fmt.Printf("  %s %s: %s\n", r.red.Sprint("✖"), fr.Filename, fr.Detail)
		}
	}
}
