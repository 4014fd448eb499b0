package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCoreErrorMessage(t *testing.T) {
	err := NewProbeError("could not read movie1.mp4", fmt.Errorf("exit status 1"))
	want := "Probe error: could not read movie1.mp4: exit status 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noUnderlying := NewConfigError("font size must be positive", nil)
	want = "Configuration error: font size must be positive"
	if noUnderlying.Error() != want {
		t.Errorf("Error() = %q, want %q", noUnderlying.Error(), want)
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{"prerequisite matches", NewPrerequisiteError("ffmpeg", nil), KindPrerequisite, true},
		{"probe matches", NewProbeError("bad stream", nil), KindProbe, true},
		{"kind mismatch", NewProbeError("bad stream", nil), KindEncode, false},
		{"plain error", stderrors.New("plain"), KindProbe, false},
		{"wrapped core error", fmt.Errorf("context: %w", NewEncodeError("boom", nil)), KindEncode, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsPrerequisite(NewPrerequisiteError("ffprobe", nil)) {
		t.Error("IsPrerequisite() = false for prerequisite error")
	}
	if !IsCancelled(NewCancelledError()) {
		t.Error("IsCancelled() = false for cancelled error")
	}
	if !IsNoFilesFound(NewNoFilesFoundError("/videos")) {
		t.Error("IsNoFilesFound() = false for no-files error")
	}
	if IsPrerequisite(NewEncodeError("boom", nil)) {
		t.Error("IsPrerequisite() = true for encode error")
	}
}

func TestErrorsIs(t *testing.T) {
	err := NewProbeError("one", nil)
	target := NewProbeError("another", nil)
	if !stderrors.Is(err, target) {
		t.Error("errors.Is should match on kind")
	}
}

func TestUnwrap(t *testing.T) {
	underlying := stderrors.New("root cause")
	err := NewEncodeError("ffmpeg exploded", underlying)
	if !stderrors.Is(err, underlying) {
		t.Error("Unwrap chain should reach the underlying error")
	}
}
