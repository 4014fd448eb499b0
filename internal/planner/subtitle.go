package planner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"conv1080/internal/util"
)

// SubtitleExtensions lists the recognized subtitle file extensions.
var SubtitleExtensions = []string{".srt", ".ass", ".ssa"}

// ResolveSubtitle looks for a subtitle file matching the video's base name
// in the same directory as the video. Matching is case-insensitive on the
// base name and accepts any recognized subtitle extension. When several
// candidates match, the lexicographically first filename wins. Absence is
// reported as ok=false, never as an error.
func ResolveSubtitle(videoPath string) (path string, ok bool) {
	dir := filepath.Dir(videoPath)
	stem := strings.ToLower(util.GetFileStem(videoPath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	extSet := make(map[string]bool, len(SubtitleExtensions))
	for _, ext := range SubtitleExtensions {
		extSet[ext] = true
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !extSet[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		if strings.ToLower(util.GetFileStem(name)) == stem {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), true
}
