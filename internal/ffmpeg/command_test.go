package ffmpeg

import (
	"reflect"
	"strings"
	"testing"

	"conv1080/internal/errors"
	"conv1080/internal/hwaccel"
)

func TestBuildArgsWithFilterAndNVENC(t *testing.T) {
	enc := hwaccel.Choice{Kind: hwaccel.NVENC, Codec: "h264_nvenc"}
	args := BuildArgs("/in/movie1.mp4", "/out/movie1_1080p.mp4", "scale=1920:1080,pad=1920:1080:0:0:black", enc)

	joined := strings.Join(args, " ")

	if !strings.HasPrefix(joined, "-y -i /in/movie1.mp4") {
		t.Errorf("args must start with -y -i <input>: %s", joined)
	}
	if !strings.Contains(joined, "-vf scale=1920:1080,pad=1920:1080:0:0:black") {
		t.Errorf("missing filter graph: %s", joined)
	}
	if !strings.Contains(joined, "-c:v h264_nvenc") {
		t.Errorf("missing codec selection: %s", joined)
	}
	if !strings.Contains(joined, "-maxrate 10M") {
		t.Errorf("missing NVENC rate-control flags: %s", joined)
	}
	if !strings.Contains(joined, "-c:a copy") {
		t.Errorf("audio must be stream-copied: %s", joined)
	}
	if !strings.Contains(joined, "-movflags +faststart") {
		t.Errorf("missing faststart flag: %s", joined)
	}
	if args[len(args)-1] != "/out/movie1_1080p.mp4" {
		t.Errorf("output path must be last: %s", joined)
	}
}

func TestBuildArgsWithoutFilter(t *testing.T) {
	enc := hwaccel.Fallback
	args := BuildArgs("/in/a.mkv", "/out/a_1080p.mp4", "", enc)

	for _, a := range args {
		if a == "-vf" {
			t.Fatalf("no -vf expected for empty filter graph: %v", args)
		}
	}
	if !strings.Contains(strings.Join(args, " "), "-c:v libx264 -preset veryfast -crf 23") {
		t.Errorf("missing libx264 flags: %v", args)
	}
}

func TestBuildArgsPerEncoderFlags(t *testing.T) {
	tests := []struct {
		name string
		enc  hwaccel.Choice
		want []string
	}{
		{
			name: "amf",
			enc:  hwaccel.Choice{Kind: hwaccel.AMF, Codec: "h264_amf"},
			want: []string{"-quality", "speed", "-rc", "vbr_peak", "-qp_i", "23", "-qp_p", "23"},
		},
		{
			name: "qsv",
			enc:  hwaccel.Choice{Kind: hwaccel.QSV, Codec: "h264_qsv"},
			want: []string{"-preset", "veryfast", "-global_quality", "23"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := BuildArgs("in.mp4", "out.mp4", "", tt.enc)
			joined := strings.Join(args, " ")
			wantJoined := strings.Join(tt.want, " ")
			if !strings.Contains(joined, wantJoined) {
				t.Errorf("args %q missing %q", joined, wantJoined)
			}
		})
	}
}

func TestCheckPrerequisitesMissingTools(t *testing.T) {
	// An empty PATH makes both tool lookups fail.
	t.Setenv("PATH", t.TempDir())

	err := CheckPrerequisites()
	if err == nil {
		t.Fatal("CheckPrerequisites() = nil, want error with no tools on PATH")
	}
	if !errors.IsPrerequisite(err) {
		t.Errorf("error = %v, want prerequisite kind", err)
	}
}

func TestBuildArgsDeterministic(t *testing.T) {
	enc := hwaccel.Fallback
	a := BuildArgs("in.mp4", "out.mp4", "scale=1920:1080", enc)
	b := BuildArgs("in.mp4", "out.mp4", "scale=1920:1080", enc)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("BuildArgs not deterministic: %v vs %v", a, b)
	}
}
