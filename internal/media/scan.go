package media

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"filmstrip/internal/logging"
)

// Scan walks root and returns the paths of every media file beneath it.
// Hidden files and directories are skipped, as are unreadable subtrees
// (logged and passed over rather than aborting the walk). The walk stops
// early with the context error if ctx is cancelled.
func Scan(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			logging.Warn("Error accessing path %s: %v", path, err)
			return nil
		}

		// The root itself is exempt from the hidden check so that a
		// library rooted at a dotted directory still scans.
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if IsMedia(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
