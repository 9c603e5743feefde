package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// File is an importable file found during a workspace scan.
type File struct {
	RelPath string    `json:"path"`   // Relative path from the root (e.g., "docs/slides.json")
	Folder  string    `json:"folder"` // Path components except the file name (e.g., "docs")
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// Scan walks the workspace and returns every supported file, skipping
// hidden directories such as .git.
func (m *Manager) Scan(ctx context.Context) ([]File, error) {
	files := []File{}

	err := filepath.WalkDir(m.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", p, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if p != m.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !supportedExts[strings.ToLower(filepath.Ext(p))] {
			return nil
		}

		relPath, err := filepath.Rel(m.root, p)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", p, err)
		}
		relPath = filepath.ToSlash(relPath)

		folder := filepath.ToSlash(filepath.Dir(relPath))
		if folder == "." {
			folder = ""
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}

		files = append(files, File{
			RelPath: relPath,
			Folder:  folder,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	return files, nil
}
