package util

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61.9, "00:01:01"},
		{3661, "01:01:01"},
		{7325.5, "02:02:05"},
		{-1, "??:??:??"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseFFmpegTime(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"00:00:00.00", 0, true},
		{"00:01:30.50", 90.5, true},
		{"01:00:00.00", 3600, true},
		{"02:15:42.25", 8142.25, true},
		{"90.5", 0, false},
		{"1:2", 0, false},
		{"aa:bb:cc", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFFmpegTime(tt.input)
		if ok != tt.wantOK {
			t.Errorf("ParseFFmpegTime(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseFFmpegTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGetFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/movie1.mp4", "movie1"},
		{"movie2.mkv", "movie2"},
		{"/a/b/no_extension", "no_extension"},
		{"dotted.name.mp4", "dotted.name"},
	}

	for _, tt := range tests {
		if got := GetFileStem(tt.path); got != tt.want {
			t.Errorf("GetFileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestHasExtension(t *testing.T) {
	if !HasExtension("movie.MP4", ".mp4") {
		t.Error("expected case-insensitive match for .MP4")
	}
	if HasExtension("movie.mkv", ".mp4") {
		t.Error("unexpected match for .mkv against .mp4")
	}
}
