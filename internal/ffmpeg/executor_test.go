package ffmpeg

import (
	"strings"
	"testing"
)

func TestParseProgressLine(t *testing.T) {
	line := "frame= 1234 fps= 87 q=23.0 size=   10240KiB time=00:01:30.50 bitrate= 926.8kbits/s speed=2.51x"

	progress := ParseProgressLine(line, 181.0)
	if progress == nil {
		t.Fatal("ParseProgressLine() = nil, want progress")
	}

	if progress.ElapsedSecs != 90.5 {
		t.Errorf("ElapsedSecs = %v, want 90.5", progress.ElapsedSecs)
	}
	if progress.Percent != 50 {
		t.Errorf("Percent = %v, want 50", progress.Percent)
	}
	if progress.FPS != 87 {
		t.Errorf("FPS = %v, want 87", progress.FPS)
	}
	if progress.Speed != 2.51 {
		t.Errorf("Speed = %v, want 2.51", progress.Speed)
	}
}

func TestParseProgressLineNoTimestamp(t *testing.T) {
	if got := ParseProgressLine("Press [q] to stop, [?] for help", 100); got != nil {
		t.Errorf("ParseProgressLine() = %v, want nil for non-progress line", got)
	}
}

func TestParseProgressLineZeroDuration(t *testing.T) {
	line := "frame= 10 fps= 30 time=00:00:05.00 speed=1.0x"

	progress := ParseProgressLine(line, 0)
	if progress == nil {
		t.Fatal("ParseProgressLine() = nil, want progress even without duration")
	}
	if progress.Percent != 0 {
		t.Errorf("Percent = %v, want 0 when duration unknown", progress.Percent)
	}
	if progress.ElapsedSecs != 5 {
		t.Errorf("ElapsedSecs = %v, want 5", progress.ElapsedSecs)
	}
}

func TestParseProgressLineClampsPercent(t *testing.T) {
	line := "frame= 99 fps= 30 time=00:02:00.00 speed=1.0x"

	progress := ParseProgressLine(line, 60)
	if progress == nil {
		t.Fatal("ParseProgressLine() = nil, want progress")
	}
	if progress.Percent != 100 {
		t.Errorf("Percent = %v, want clamped to 100", progress.Percent)
	}
}

func TestParseProgressCollectsCarriageReturnLines(t *testing.T) {
	stream := "ffmpeg version n6.0\n" +
		"frame= 100 fps= 50 time=00:00:10.00 speed=1.5x\r" +
		"frame= 200 fps= 50 time=00:00:20.00 speed=1.5x\r" +
		"done\n"

	var updates []Progress
	var captured strings.Builder
	parseProgress(strings.NewReader(stream), &captured, 40, func(p Progress) {
		updates = append(updates, p)
	})

	if len(updates) != 2 {
		t.Fatalf("got %d progress updates, want 2", len(updates))
	}
	if updates[0].Percent != 25 || updates[1].Percent != 50 {
		t.Errorf("percentages = %v, %v, want 25, 50", updates[0].Percent, updates[1].Percent)
	}
	if captured.String() != stream {
		t.Error("full stderr must be captured verbatim")
	}
}

func TestStderrTail(t *testing.T) {
	stderr := "line1\nline2\r\nline3\n\nline4\nline5\nline6\n"

	tail := StderrTail(stderr, 3)
	want := "line4\nline5\nline6"
	if tail != want {
		t.Errorf("StderrTail() = %q, want %q", tail, want)
	}

	short := StderrTail("only\n", 5)
	if short != "only" {
		t.Errorf("StderrTail() = %q, want %q", short, "only")
	}
}

func TestProgressString(t *testing.T) {
	p := Progress{Percent: 42.5, FPS: 120, Speed: 3.25}
	want := "42.5% at 120 fps (3.25x)"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
