// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileio reads and writes whole text files over an afero filesystem.
//
// Reads load the entire file and require valid UTF-8. Writes are
// all-or-nothing: content lands in a temporary file next to the target and
// is renamed into place, so a failed write never leaves a truncated output.
// The rename replaces the file's inode: hard links to the old file keep the
// old content, and the new file is owned by the writing user.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// DefaultFileMode is the permission given to newly created output files.
const DefaultFileMode os.FileMode = 0o644

// Adapter performs whole-file text I/O against an afero.Fs.
type Adapter struct {
	fs     afero.Fs
	mode   os.FileMode
	logger *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithFileMode sets the permission used when the output file does not exist yet.
func WithFileMode(mode os.FileMode) Option {
	return func(a *Adapter) {
		a.mode = mode
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New returns an Adapter backed by fs.
func New(fs afero.Fs, opts ...Option) *Adapter {
	a := &Adapter{
		fs:     fs,
		mode:   DefaultFileMode,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewOS returns an Adapter backed by the operating system filesystem.
func NewOS(opts ...Option) *Adapter {
	return New(afero.NewOsFs(), opts...)
}

// ReadText returns the full contents of the file at path. Any failure,
// including a directory path or invalid UTF-8 content, is a *ReadError.
func (a *Adapter) ReadText(path string) (string, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidText}
	}

	a.logger.Debug("read file", "path", path, "bytes", len(data))
	return string(data), nil
}

// WriteText stores content at path, creating or replacing the file. Any
// failure is a *WriteError and leaves an existing file at path unchanged.
//
// A symlinked path is written through to the file it points at. New files
// get the configured mode filtered by the process umask; replaced files
// keep their permission bits.
func (a *Adapter) WriteText(path, content string) error {
	target, err := a.resolve(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(target)
	info, err := a.fs.Stat(dir)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return &WriteError{Path: path, Err: fmt.Errorf("parent %s is not a directory", dir)}
	}

	mode, keepMode := a.mode, false
	if existing, err := a.fs.Stat(target); err == nil {
		if existing.IsDir() {
			return &WriteError{Path: path, Err: errors.New("is a directory")}
		}
		mode, keepMode = existing.Mode().Perm(), true
	}

	tmp, err := a.openTemp(dir, filepath.Base(target), mode)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := a.commit(tmp, content, mode, keepMode, target); err != nil {
		if rmErr := a.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			a.logger.Warn("removing temporary file", "path", tmpName, "error", rmErr)
		}
		return &WriteError{Path: path, Err: err}
	}

	a.logger.Debug("wrote file", "path", target, "bytes", len(content))
	return nil
}

// maxSymlinks bounds symlink resolution in resolve.
const maxSymlinks = 40

// resolve follows symlinks at path until it reaches a non-link or a path
// that does not exist yet. Filesystems without symlink support return path.
func (a *Adapter) resolve(path string) (string, error) {
	lstater, ok := a.fs.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	for range maxSymlinks {
		info, _, err := lstater.LstatIfPossible(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}

		dest, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return "", errors.New("too many levels of symbolic links")
}

// openTemp creates a fresh file next to the target. The mode goes through
// OpenFile so the operating system applies the umask.
func (a *Adapter) openTemp(dir, base string, mode os.FileMode) (afero.File, error) {
	for range 100 {
		name := filepath.Join(dir, fmt.Sprintf(".%s.%08x.tmp", base, rand.Uint32()))
		f, err := a.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("no free temporary file name in %s", dir)
}

// commit writes content to tmp, closes it and renames it over target.
// keepMode restores the permission bits of the file being replaced.
func (a *Adapter) commit(tmp afero.File, content string, mode os.FileMode, keepMode bool, target string) error {
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if keepMode {
		if err := a.fs.Chmod(tmp.Name(), mode); err != nil {
			return err
		}
	}
	return a.fs.Rename(tmp.Name(), target)
}
