package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// WalkResult contains the results of a directory walk
type WalkResult struct {
	// Paths contains the absolute paths of every entry below the root
	Paths []string
	// Errors contains the non-fatal errors encountered while walking
	Errors []error
}

// WalkAll recursively enumerates every entry under root.
func WalkAll(root string) (*WalkResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	result := &WalkResult{
		Paths:  make([]string, 0),
		Errors: make([]error, 0),
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			// An unreadable directory was already recorded on its first visit
			return nil
		}

		// Skip the root directory itself
		if path == absRoot {
			return nil
		}

		result.Paths = append(result.Paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Paths)

	return result, nil
}
