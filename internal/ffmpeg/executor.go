package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"conv1080/internal/errors"
	"conv1080/internal/util"
)

// Progress represents conversion progress parsed from ffmpeg's stderr.
type Progress struct {
	Percent     float32
	FPS         float32
	Speed       float32
	ElapsedSecs float64
	ETA         time.Duration
}

// ProgressCallback is called with progress updates during conversion.
// Callbacks are advisory: dropped or unparsed progress lines never affect
// the conversion result.
type ProgressCallback func(Progress)

// Result contains the result of one ffmpeg conversion run.
type Result struct {
	Success bool
	Error   error
	Stderr  string
}

var (
	timeRegex  = regexp.MustCompile(`time=(\d{2,}:\d{2}:\d{2}\.?\d*)`)
	fpsRegex   = regexp.MustCompile(`fps=\s*(\d+\.?\d*)`)
	speedRegex = regexp.MustCompile(`speed=\s*(\d+\.?\d*)x`)
)

// RunConvert executes one ffmpeg conversion, parsing progress from the
// diagnostic stream as it arrives. durationSecs is used to derive the
// completion percentage; when zero, percent stays zero and the run is
// still valid.
func RunConvert(ctx context.Context, args []string, durationSecs float64, callback ProgressCallback) Result {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{
			Success: false,
			Error:   errors.NewEncodeError("failed to get stderr pipe", err),
		}
	}

	if err := cmd.Start(); err != nil {
		return Result{
			Success: false,
			Error:   errors.NewEncodeError("failed to start ffmpeg", err),
		}
	}

	var stderrBuilder strings.Builder
	parseProgress(stderr, &stderrBuilder, durationSecs, callback)

	err = cmd.Wait()
	stderrStr := stderrBuilder.String()

	if err != nil {
		if ctx.Err() != nil {
			return Result{
				Success: false,
				Error:   errors.NewCancelledError(),
				Stderr:  stderrStr,
			}
		}
		return Result{
			Success: false,
			Error:   errors.WrapExecError("ffmpeg", err, StderrTail(stderrStr, 5)),
			Stderr:  stderrStr,
		}
	}

	return Result{
		Success: true,
		Stderr:  stderrStr,
	}
}

// parseProgress reads ffmpeg stderr and emits progress updates.
// Progress lines end with \r while full log lines end with \n, so the
// stream is consumed byte-wise.
func parseProgress(stderr io.Reader, stderrBuilder *strings.Builder, durationSecs float64, callback ProgressCallback) {
	reader := bufio.NewReader(stderr)
	var lineBuf strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}

		stderrBuilder.WriteByte(b)

		if b == '\r' || b == '\n' {
			line := lineBuf.String()
			lineBuf.Reset()

			if callback != nil && strings.Contains(line, "time=") {
				if progress := ParseProgressLine(line, durationSecs); progress != nil {
					callback(*progress)
				}
			}
		} else {
			lineBuf.WriteByte(b)
		}
	}
}

// ParseProgressLine extracts progress information from one ffmpeg stderr
// line. Returns nil when the line carries no usable timestamp.
func ParseProgressLine(line string, durationSecs float64) *Progress {
	matches := timeRegex.FindStringSubmatch(line)
	if len(matches) < 2 {
		return nil
	}

	elapsedSecs, ok := util.ParseFFmpegTime(matches[1])
	if !ok {
		return nil
	}

	var fps float32
	if m := fpsRegex.FindStringSubmatch(line); len(m) >= 2 {
		if f, err := strconv.ParseFloat(m[1], 32); err == nil {
			fps = float32(f)
		}
	}

	var speed float32
	if m := speedRegex.FindStringSubmatch(line); len(m) >= 2 {
		if s, err := strconv.ParseFloat(m[1], 32); err == nil {
			speed = float32(s)
		}
	}

	var percent float32
	if durationSecs > 0 {
		percent = float32((elapsedSecs / durationSecs) * 100)
		if percent > 100 {
			percent = 100
		}
	}

	var eta time.Duration
	if speed > 0 && durationSecs > 0 {
		remaining := durationSecs - elapsedSecs
		if remaining > 0 {
			eta = time.Duration(remaining/float64(speed)) * time.Second
		}
	}

	return &Progress{
		Percent:     percent,
		FPS:         fps,
		Speed:       speed,
		ElapsedSecs: elapsedSecs,
		ETA:         eta,
	}
}

// StderrTail returns the last n non-empty lines of captured stderr,
// suitable for failure detail.
func StderrTail(stderr string, n int) string {
	lines := strings.FieldsFunc(stderr, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	var tail []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			tail = append(tail, line)
		}
	}

	if len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	return strings.Join(tail, "\n")
}

// String renders a progress snapshot for logging.
func (p Progress) String() string {
	return fmt.Sprintf("%.1f%% at %.0f fps (%.2fx)", p.Percent, p.FPS, p.Speed)
}
