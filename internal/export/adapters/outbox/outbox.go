// Package outbox delivers background exports by writing them to a directory.
package outbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"dashboard-export-service/internal/export/core/domain"
)

type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Deliver writes the archive under its filename, replacing any earlier export
// of the same day. The file is written to a temp name first and renamed.
func (d *Dir) Deliver(ctx context.Context, a *domain.Archive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("create outbox: %w", err)
	}

	final := filepath.Join(d.path, filepath.Base(a.Filename))
	tmp, err := os.CreateTemp(d.path, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(a.Content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", a.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", a.Filename, err)
	}
	return nil
}
