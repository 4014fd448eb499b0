package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"conv1080/internal/errors"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func TestFindVideoFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b_movie.mp4")
	touch(t, dir, "A_Movie.MKV")
	touch(t, dir, "notes.txt")
	touch(t, dir, ".hidden.mp4")
	touch(t, dir, "clip.webm")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	files, err := FindVideoFiles(dir, []string{".mp4", ".mkv"})
	if err != nil {
		t.Fatalf("FindVideoFiles() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2: %v", len(files), files)
	}

	// Case-insensitive sort: A_Movie.MKV before b_movie.mp4
	if filepath.Base(files[0]) != "A_Movie.MKV" {
		t.Errorf("files[0] = %s, want A_Movie.MKV", filepath.Base(files[0]))
	}
	if filepath.Base(files[1]) != "b_movie.mp4" {
		t.Errorf("files[1] = %s, want b_movie.mp4", filepath.Base(files[1]))
	}
}

func TestFindVideoFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")

	_, err := FindVideoFiles(dir, []string{".mp4", ".mkv"})
	if err == nil {
		t.Fatal("expected error for directory with no videos")
	}
	if !errors.IsNoFilesFound(err) {
		t.Errorf("error = %v, want no-files-found kind", err)
	}
}

func TestFindVideoFilesMissingDir(t *testing.T) {
	_, err := FindVideoFiles("/nonexistent/videos", []string{".mp4"})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.IsKind(err, errors.KindIO) {
		t.Errorf("error = %v, want I/O kind", err)
	}
}

func TestFindVideoFilesNotADir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "movie.mp4")

	_, err := FindVideoFiles(filepath.Join(dir, "movie.mp4"), []string{".mp4"})
	if err == nil {
		t.Fatal("expected error when path is a file")
	}
	if !errors.IsKind(err, errors.KindIO) {
		t.Errorf("error = %v, want I/O kind", err)
	}
}
