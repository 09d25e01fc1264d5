package registry_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/engine/registry"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
}

func TestCheckToolHome(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		wantErr error
		wantMsg string
	}{
		{
			name: "missing path",
			setup: func(_ *testing.T, dir string) string {
				return filepath.Join(dir, "nope")
			},
			wantErr: domain.ErrNotADirectory,
			wantMsg: "is not a directory",
		},
		{
			name: "regular file",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "file")
				touch(t, p)
				return p
			},
			wantErr: domain.ErrNotADirectory,
			wantMsg: "is not a directory",
		},
		{
			name: "empty directory",
			setup: func(_ *testing.T, dir string) string {
				return dir
			},
			wantErr: domain.ErrNotAToolHome,
			wantMsg: "doesn't look like a Groovy directory",
		},
		{
			name: "groovy without gant",
			setup: func(t *testing.T, dir string) string {
				touch(t, filepath.Join(dir, "bin", "groovy"))
				return dir
			},
			wantErr: domain.ErrToolMissing,
			wantMsg: "looks like a Groovy but Gant is not found in here",
		},
		{
			name: "unix layout",
			setup: func(t *testing.T, dir string) string {
				touch(t, filepath.Join(dir, "bin", "groovy"))
				touch(t, filepath.Join(dir, "bin", "gant"))
				return dir
			},
		},
		{
			name: "windows layout",
			setup: func(t *testing.T, dir string) string {
				touch(t, filepath.Join(dir, "bin", "groovy.bat"))
				touch(t, filepath.Join(dir, "bin", "gant.bat"))
				return dir
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t, t.TempDir())

			res := registry.CheckToolHome(path)

			if tt.wantErr == nil {
				assert.True(t, res.OK())
				assert.Empty(t, res.Message)
				return
			}
			assert.False(t, res.OK())
			assert.True(t, errors.Is(res.Err, tt.wantErr), "got %v", res.Err)
			assert.Contains(t, res.Message, path)
			assert.Contains(t, res.Message, tt.wantMsg)
		})
	}
}
