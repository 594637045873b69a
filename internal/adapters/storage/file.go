package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
)

const snapshotExt = ".json"

// File stores each snapshot as a JSON file in one directory. Writes go to a
// temporary file that is renamed into place, so readers never see a partial
// snapshot.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a store rooted there.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("snapshot directory required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	return &File{dir: dir}, nil
}

// path escapes the key so that it names a file inside dir.
func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+snapshotExt)
}

func (f *File) Load(ctx context.Context, key string) (document.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return b, nil
}

func (f *File) Save(ctx context.Context, key string, snap document.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(snap); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

func (f *File) Name() string { return checkerName }

// HealthCheck verifies the snapshot directory is still a directory.
func (f *File) HealthCheck(context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("snapshot directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("snapshot directory %s is not a directory", f.dir)
	}
	return nil
}

func (f *File) Close() error { return nil }
