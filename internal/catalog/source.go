package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	appErrors "speciesfilter/internal/errors"
)

// Source yields the candidate list.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// StaticSource serves a fixed list.
type StaticSource []string

// Load returns a copy of the list.
func (s StaticSource) Load(context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}

// FileSource reads a JSON payload file.
type FileSource struct {
	Path string
}

// Load reads and parses the payload file.
func (s FileSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: species payload path comes from config/flags
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("species file %s not found", s.Path), err)
	}
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("read %s: %v", s.Path, err), err)
	}
	names, err := ParsePayload(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return names, nil
}

// Open picks a source for path by its extension: .db, .sqlite and .sqlite3
// are species databases, anything else is a JSON payload.
func Open(path string) (Source, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "no species source configured", nil)
	}
	info, err := os.Stat(trimmed)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("species source %s not found", trimmed), err)
	}
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("stat %s: %v", trimmed, err), err)
	}
	if info.IsDir() {
		return nil, appErrors.New(appErrors.CodeSourceUnsupported, fmt.Sprintf("species source %s is a directory", trimmed), nil)
	}
	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(trimmed), nil
	default:
		return FileSource{Path: trimmed}, nil
	}
}
