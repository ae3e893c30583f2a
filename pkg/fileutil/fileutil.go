// Package fileutil provides file helpers shared by the content store and the renderer.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrWrite is wrapped by every WriteAtomic failure.
var ErrWrite = errors.New("atomic write failed")

// WriteAtomic writes data to path via a temp file in the same directory and a rename.
// Readers observe either the previous file or the complete new one, never a partial write.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to create output directory: %s", dir)
		return err
	}

	var tmp *os.File
	tmp, err = os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to create temp file in %s", dir)
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to write temp file: %s", tmpPath)
		return err
	}

	err = tmp.Sync()
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to sync temp file: %s", tmpPath)
		return err
	}

	err = tmp.Close()
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to close temp file: %s", tmpPath)
		return err
	}

	err = os.Chmod(tmpPath, perm)
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to set permissions on %s", tmpPath)
		return err
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		err = errors.Wrapf(wrapWrite(err), "failed to move temp file into place: %s", path)
		return err
	}

	return err
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) (exists bool) {
	info, err := os.Stat(path)
	if err != nil {
		return exists
	}
	exists = !info.IsDir()
	return exists
}

// writeError keeps both the sentinel and the underlying os error reachable through errors.Is.
type writeError struct {
	cause error
}

func (e *writeError) Error() (msg string) {
	msg = e.cause.Error()
	return msg
}

func (e *writeError) Is(target error) (ok bool) {
	ok = target == ErrWrite
	return ok
}

func (e *writeError) Unwrap() (cause error) {
	cause = e.cause
	return cause
}

func wrapWrite(err error) (wrapped error) {
	wrapped = &writeError{cause: err}
	return wrapped
}
