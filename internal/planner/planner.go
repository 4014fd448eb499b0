// Package planner derives the per-file conversion plan: target geometry,
// letterbox padding, subtitle burn-in, and skip decisions.
package planner

import (
	"fmt"
	"strings"

	"conv1080/internal/ffprobe"
)

// Target canvas dimensions. Every converted file is exactly this size.
const (
	TargetWidth  = 1920
	TargetHeight = 1080
)

// Plan describes the work needed to convert one input file.
// It is derived once per file and discarded after use.
type Plan struct {
	// Skip is true when the source is already at the target resolution
	// and there is no subtitle to burn in.
	Skip bool

	// NeedsScaling is true when the source geometry differs from the target.
	NeedsScaling bool

	// Scaled dimensions (even, aspect-preserving) and the symmetric
	// padding offsets needed to reach the target canvas.
	ScaledWidth  int
	ScaledHeight int
	PadX         int
	PadY         int

	// SubtitlePath is the subtitle file to burn in, empty when none matched.
	SubtitlePath string
	FontSize     int
}

// Build derives the conversion plan for a probed file. subtitlePath is
// empty when no matching subtitle exists.
func Build(meta *ffprobe.MediaInfo, subtitlePath string, fontSize int) Plan {
	atTarget := meta.Width == TargetWidth && meta.Height == TargetHeight

	if atTarget && subtitlePath == "" {
		return Plan{Skip: true}
	}

	plan := Plan{
		SubtitlePath: subtitlePath,
		FontSize:     fontSize,
	}

	if !atTarget {
		plan.NeedsScaling = true

		// Scale to fit inside the canvas, never upscale past exact fit,
		// never crop.
		scaleW := float64(TargetWidth) / float64(meta.Width)
		scaleH := float64(TargetHeight) / float64(meta.Height)
		scale := scaleW
		if scaleH < scale {
			scale = scaleH
		}

		newWidth := int(float64(meta.Width) * scale)
		newHeight := int(float64(meta.Height) * scale)

		// The encoders require even dimensions.
		newWidth -= newWidth % 2
		newHeight -= newHeight % 2

		plan.ScaledWidth = newWidth
		plan.ScaledHeight = newHeight
		plan.PadX = (TargetWidth - newWidth) / 2
		plan.PadY = (TargetHeight - newHeight) / 2
	}

	return plan
}

// HasSubtitle reports whether the plan burns in a subtitle file.
func (p Plan) HasSubtitle() bool {
	return p.SubtitlePath != ""
}

// Filters returns the ordered filter operations for the plan.
// A skipped plan has none.
func (p Plan) Filters() []string {
	if p.Skip {
		return nil
	}

	var ops []string
	if p.NeedsScaling {
		ops = append(ops,
			fmt.Sprintf("scale=%d:%d", p.ScaledWidth, p.ScaledHeight),
			fmt.Sprintf("pad=%d:%d:%d:%d:black", TargetWidth, TargetHeight, p.PadX, p.PadY),
		)
	}
	if p.HasSubtitle() {
		ops = append(ops, subtitleFilter(p.SubtitlePath, p.FontSize))
	}
	return ops
}

// FilterGraph renders the plan's filter operations as an ffmpeg -vf value.
// Returns empty string when no filtering is needed.
func (p Plan) FilterGraph() string {
	return strings.Join(p.Filters(), ",")
}

// subtitleFilter builds the burn-in filter for a subtitle file. The path is
// escaped for ffmpeg's filter syntax (backslashes and drive colons).
func subtitleFilter(path string, fontSize int) string {
	escaped := strings.ReplaceAll(path, `\`, "/")
	escaped = strings.ReplaceAll(escaped, ":", `\:`)
	return fmt.Sprintf("subtitles='%s':force_style='FontSize=%d'", escaped, fontSize)
}
