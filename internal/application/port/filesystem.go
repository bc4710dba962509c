package port

import (
	"context"
	"time"
)

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	ModTime(ctx context.Context, path string) (time.Time, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// ListDirs returns the names of the direct subdirectories of path, sorted.
	ListDirs(ctx context.Context, path string) ([]string, error)
}
