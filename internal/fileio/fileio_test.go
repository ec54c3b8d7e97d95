// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, fs afero.Fs)
		path    string
		want    string
		wantErr error
	}{
		{
			name: "reads whole file",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("Hello, world!\nline two\n"), 0o644))
			},
			path: "/in.txt",
			want: "Hello, world!\nline two\n",
		},
		{
			name: "reads empty file",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/empty.txt", nil, 0o644))
			},
			path: "/empty.txt",
			want: "",
		},
		{
			name: "reads multi-byte text",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/emoji.txt", []byte("🤣😃👍 café"), 0o644))
			},
			path: "/emoji.txt",
			want: "🤣😃👍 café",
		},
		{
			name:    "missing file",
			setup:   func(t *testing.T, fs afero.Fs) {},
			path:    "/does/not/exist",
			wantErr: os.ErrNotExist,
		},
		{
			name: "directory",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.MkdirAll("/somedir", 0o755))
			},
			path:    "/somedir",
			wantErr: ErrRead,
		},
		{
			name: "invalid utf-8",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/bin.dat", []byte{0xff, 0xfe, 'a'}, 0o644))
			},
			path:    "/bin.dat",
			wantErr: ErrInvalidText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(t, fs)

			got, err := New(fs).ReadText(tt.path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrRead)
				var readErr *ReadError
				require.ErrorAs(t, err, &readErr)
				assert.Equal(t, tt.path, readErr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	t.Run("creates new file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		a := New(fs)

		require.NoError(t, a.WriteText("/out.txt", "Hll, wrld!"))

		data, err := afero.ReadFile(fs, "/out.txt")
		require.NoError(t, err)
		assert.Equal(t, "Hll, wrld!", string(data))

		info, err := fs.Stat("/out.txt")
		require.NoError(t, err)
		assert.Equal(t, DefaultFileMode, info.Mode().Perm())
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/out.txt", []byte("a much longer previous content"), 0o600))

		require.NoError(t, New(fs).WriteText("/out.txt", "short"))

		data, err := afero.ReadFile(fs, "/out.txt")
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))

		info, err := fs.Stat("/out.txt")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "existing permissions are kept")
	})

	t.Run("honours configured file mode", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, New(fs, WithFileMode(0o600)).WriteText("/out.txt", "x"))

		info, err := fs.Stat("/out.txt")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/work", 0o755))
		require.NoError(t, New(fs).WriteText("/work/out.txt", "content"))

		entries, err := afero.ReadDir(fs, "/work")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.txt", entries[0].Name())
	})

	t.Run("missing parent directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		err := New(fs).WriteText("/no/such/dir/out.txt", "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWrite)
		assert.ErrorIs(t, err, os.ErrNotExist)

		_, statErr := fs.Stat("/no/such/dir/out.txt")
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("parent is a file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o644))

		err := New(fs).WriteText("/file/out.txt", "x")
		var writeErr *WriteError
		require.ErrorAs(t, err, &writeErr)
		assert.Equal(t, "/file/out.txt", writeErr.Path)
	})

	t.Run("target is a directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/target", 0o755))

		err := New(fs).WriteText("/target", "x")
		assert.ErrorIs(t, err, ErrWrite)
	})

	t.Run("read only filesystem", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		err := New(fs).WriteText("/out.txt", "x")
		assert.ErrorIs(t, err, ErrWrite)
	})
}

func TestWriteText_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := NewOS().WriteText(filepath.Join(dir, "out.txt"), "x")
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestRoundTripOnDisk(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("Morris, Minnesota"), 0o644))

	a := NewOS()
	text, err := a.ReadText(in)
	require.NoError(t, err)
	require.NoError(t, a.WriteText(out, text))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Morris, Minnesota", string(data))
}
