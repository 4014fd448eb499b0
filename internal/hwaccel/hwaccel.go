// Package hwaccel selects the H.264 encoder to use for a run.
//
// Detection shells out to ffmpeg's encoder listing once and checks for
// vendor hardware encoders in a fixed priority order: NVIDIA NVENC, then
// AMD AMF, then Intel QuickSync. When none is available, or the listing
// itself fails, the software libx264 encoder is used. Probe failure is
// never an error.
package hwaccel

import (
	"context"
	"os/exec"
	"strings"
	"sync"
)

// Kind identifies an encoder variant.
type Kind int

const (
	// NVENC is the NVIDIA hardware encoder.
	NVENC Kind = iota
	// AMF is the AMD hardware encoder.
	AMF
	// QSV is the Intel QuickSync hardware encoder.
	QSV
	// CPU is the libx264 software fallback.
	CPU
)

// Choice is the selected encoder variant. Exactly one Choice is detected
// per run and reused for every file.
type Choice struct {
	Kind  Kind
	Codec string // ffmpeg encoder name passed to -c:v
	Label string // Human-readable name for display
}

// IsHardware reports whether the choice is a hardware encoder.
func (c Choice) IsHardware() bool {
	return c.Kind != CPU
}

// CodecArgs returns the encoder-specific rate-control and preset flags.
// The hardware variants carry flags the software path does not need.
func (c Choice) CodecArgs() []string {
	switch c.Kind {
	case NVENC:
		return []string{
			"-preset", "p1",
			"-tune", "hq",
			"-rc", "vbr",
			"-cq", "23",
			"-b:v", "0",
			"-maxrate", "10M",
			"-bufsize", "20M",
		}
	case AMF:
		return []string{
			"-quality", "speed",
			"-rc", "vbr_peak",
			"-qp_i", "23",
			"-qp_p", "23",
		}
	case QSV:
		return []string{
			"-preset", "veryfast",
			"-global_quality", "23",
		}
	default:
		return []string{
			"-preset", "veryfast",
			"-crf", "23",
		}
	}
}

// Fallback is the software encoder used when no hardware encoder is usable.
var Fallback = Choice{Kind: CPU, Codec: "libx264", Label: "CPU (libx264)"}

// candidates holds the probe order. The fallback is last so a listing that
// somehow contains no candidate still resolves to it.
var candidates = []Choice{
	{Kind: NVENC, Codec: "h264_nvenc", Label: "NVIDIA NVENC"},
	{Kind: AMF, Codec: "h264_amf", Label: "AMD AMF"},
	{Kind: QSV, Codec: "h264_qsv", Label: "Intel QuickSync"},
	Fallback,
}

// ListEncodersFunc returns ffmpeg's encoder listing output.
// Injectable for tests.
type ListEncodersFunc func(ctx context.Context) (string, error)

// Detector determines the encoder Choice for a run. Detection runs at most
// once; subsequent Detect calls return the cached result.
type Detector struct {
	once   sync.Once
	choice Choice
	list   ListEncodersFunc
}

// NewDetector creates a Detector backed by the real ffmpeg binary.
func NewDetector() *Detector {
	return &Detector{list: listEncoders}
}

// NewDetectorWithLister creates a Detector with a custom capability lister.
func NewDetectorWithLister(list ListEncodersFunc) *Detector {
	return &Detector{list: list}
}

// Detect returns the best usable encoder. It never fails: any probing
// error degrades to the software fallback.
func (d *Detector) Detect(ctx context.Context) Choice {
	d.once.Do(func() {
		d.choice = Fallback

		output, err := d.list(ctx)
		if err != nil {
			return
		}

		for _, c := range candidates {
			if strings.Contains(output, c.Codec) {
				d.choice = c
				return
			}
		}
	})
	return d.choice
}

// listEncoders runs ffmpeg's capability-listing mode.
func listEncoders(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
