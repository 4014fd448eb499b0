// Package ffprobe extracts stream metadata using the ffprobe tool.
package ffprobe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"conv1080/internal/errors"
)

// MediaInfo contains the stream metadata used for conversion planning.
type MediaInfo struct {
	Width    int
	Height   int
	Duration float64 // Seconds; zero when the container reports none
}

// ffprobeOutput represents the JSON output from ffprobe.
type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Probe returns the media information for a video file.
func Probe(inputPath string) (*MediaInfo, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, errors.NewProbeError(fmt.Sprintf("ffprobe failed for %s", inputPath), err)
	}

	probe, err := parseOutput(output)
	if err != nil {
		return nil, errors.NewProbeError(fmt.Sprintf("unreadable ffprobe output for %s", inputPath), err)
	}

	return extractMediaInfo(probe, inputPath)
}

// parseOutput decodes raw ffprobe JSON.
func parseOutput(data []byte) (*ffprobeOutput, error) {
	var result ffprobeOutput
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &result, nil
}

// extractMediaInfo pulls width, height, and duration out of a decoded probe.
// A zero or missing duration is tolerated; missing or non-positive
// dimensions are not.
func extractMediaInfo(probe *ffprobeOutput, inputPath string) (*MediaInfo, error) {
	var videoStream *ffprobeStream
	for i := range probe.Streams {
		if probe.Streams[i].CodecType == "video" {
			videoStream = &probe.Streams[i]
			break
		}
	}

	if videoStream == nil {
		return nil, errors.NewProbeError(fmt.Sprintf("no video stream found in %s", inputPath), nil)
	}

	if videoStream.Width <= 0 || videoStream.Height <= 0 {
		return nil, errors.NewProbeError(
			fmt.Sprintf("invalid dimensions in %s: %dx%d", inputPath, videoStream.Width, videoStream.Height), nil)
	}

	info := &MediaInfo{
		Width:  videoStream.Width,
		Height: videoStream.Height,
	}

	if probe.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil && d >= 0 {
			info.Duration = d
		}
	}

	return info, nil
}
