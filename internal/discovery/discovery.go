// Package discovery provides input file discovery for conversion runs.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"conv1080/internal/errors"
)

// FindVideoFiles finds files with one of the given extensions directly in
// inputDir (non-recursive). Extensions are matched case-insensitively and
// must include the leading dot. Results are sorted case-insensitively by
// filename.
func FindVideoFiles(inputDir string, extensions []string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("directory does not exist: %s", inputDir), err)
	}
	if !info.IsDir() {
		return nil, errors.NewIOError(fmt.Sprintf("%s is not a directory", inputDir), nil)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot read directory %s", inputDir), err)
	}

	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = true
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Skip hidden files
		if strings.HasPrefix(name, ".") {
			continue
		}

		if extSet[strings.ToLower(filepath.Ext(name))] {
			files = append(files, filepath.Join(inputDir, name))
		}
	}

	if len(files) == 0 {
		return nil, errors.NewNoFilesFoundError(inputDir)
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	return files, nil
}
