package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrOutsideWorkspace is returned for paths that are empty or resolve
	// outside the workspace root.
	ErrOutsideWorkspace = errors.New("path outside workspace")
	// ErrTooLarge is returned when a file exceeds the configured size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrUnsupportedType is returned for files the editor cannot import or export.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// supportedExts are the file types listed, read and written.
var supportedExts = map[string]bool{
	".json":     true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Manager gives the import and export flows confined access to one
// directory tree.
type Manager struct {
	root     string
	maxBytes int64
}

// NewManager creates a manager rooted at root. The root must be an existing
// directory. maxBytes caps Read; zero or less disables the cap.
func NewManager(root string, maxBytes int64) (*Manager, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root is not a directory: %s", abs)
	}

	return &Manager{root: abs, maxBytes: maxBytes}, nil
}

// Root returns the absolute workspace root.
func (m *Manager) Root() string {
	return m.root
}

// Check reports whether the workspace root is still a readable directory.
func (m *Manager) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(m.root)
	if err != nil {
		return fmt.Errorf("workspace unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace root is not a directory: %s", m.root)
	}
	return nil
}

// Read returns the contents of the file at relPath.
func (m *Manager) Read(ctx context.Context, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := m.resolve(relPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedType, relPath)
	}
	if m.maxBytes > 0 && info.Size() > m.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, relPath, info.Size(), m.maxBytes)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}
	return data, nil
}

// Write stores data at relPath, creating parent folders as needed.
func (m *Manager) Write(ctx context.Context, relPath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := m.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("failed to create folder for %s: %w", relPath, err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

// resolve maps a slash-separated relative path to an absolute path inside
// the root.
func (m *Manager) resolve(relPath string) (string, error) {
	cleaned, err := cleanRelPath(relPath)
	if err != nil {
		return "", err
	}
	if !supportedExts[strings.ToLower(path.Ext(cleaned))] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, cleaned)
	}

	absPath := filepath.Join(m.root, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(absPath, m.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, relPath)
	}
	return absPath, nil
}

func cleanRelPath(raw string) (string, error) {
	trimmed := strings.TrimSpace(filepath.ToSlash(raw))
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty path", ErrOutsideWorkspace)
	}

	for _, segment := range strings.Split(trimmed, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: path traversal detected", ErrOutsideWorkspace)
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+trimmed), "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("%w: invalid path", ErrOutsideWorkspace)
	}
	return cleaned, nil
}
