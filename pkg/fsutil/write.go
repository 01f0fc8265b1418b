package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the mode for files created without a known mode.
const DefaultFileMode os.FileMode = 0o644

// BackupSuffix is appended to a path to name its sidecar backup.
const BackupSuffix = ".cstyle.bak"

// WriteAtomic writes content to a temp file beside path, syncs it, sets mode
// (DefaultFileMode when zero) and renames it over path. On failure the temp
// file is removed and path is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// CreateBackup copies path to its sidecar backup unless one already exists,
// so repeated edits keep the oldest content. It returns the backup path and
// whether a new backup was written.
func CreateBackup(ctx context.Context, path string) (string, bool, error) {
	backupPath := path + BackupSuffix

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return backupPath, false, fmt.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return backupPath, false, nil
	}
	if err != nil {
		return backupPath, false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode); err != nil {
		return backupPath, false, fmt.Errorf("write backup: %w", err)
	}
	return backupPath, true, nil
}

// SaveOptions controls Save.
type SaveOptions struct {
	// Backup writes a sidecar backup before replacing the file.
	Backup bool
}

// Save replaces the file described by info with content. It refuses with
// ErrModified when the file changed since info was taken.
func Save(ctx context.Context, info *FileInfo, content []byte, opts SaveOptions) error {
	modified, err := CheckModified(ctx, info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrModified, info.Path)
	}

	if opts.Backup {
		if _, _, err := CreateBackup(ctx, info.Path); err != nil {
			return err
		}
	}

	return WriteAtomic(ctx, info.Path, content, info.Mode.Perm())
}
