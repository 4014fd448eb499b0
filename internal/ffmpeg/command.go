// Package ffmpeg drives the external ffmpeg process: argument
// construction, execution, and progress parsing from its stderr stream.
package ffmpeg

import (
	"os/exec"

	"conv1080/internal/errors"
	"conv1080/internal/hwaccel"
)

// BuildArgs constructs the full ffmpeg argument list for one conversion.
// Audio is stream-copied; the moov atom is fronted for streaming playback.
func BuildArgs(inputPath, outputPath, filterGraph string, enc hwaccel.Choice) []string {
	args := []string{"-y", "-i", inputPath}

	if filterGraph != "" {
		args = append(args, "-vf", filterGraph)
	}

	args = append(args, "-c:v", enc.Codec)
	args = append(args, enc.CodecArgs()...)

	args = append(args,
		"-c:a", "copy",
		"-movflags", "+faststart",
		outputPath,
	)

	return args
}

// CheckPrerequisites verifies that ffmpeg and ffprobe are runnable.
// A missing tool is a hard failure: no file may be processed without it.
func CheckPrerequisites() error {
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if err := exec.Command(tool, "-version").Run(); err != nil {
			return errors.NewPrerequisiteError(tool, err)
		}
	}
	return nil
}
