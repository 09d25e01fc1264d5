package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gant/internal/adapters/config"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_YAML(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, "gant.yaml", `
version: "1"
steps:
  - name: compile
    installation: groovy-3
    scriptFile: build.gant
    targets: |
      clean
      compile
      #deploy
    properties: |
      env=prod
      level=5
  - name: test
    targets: test
`)

	sf, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, path, sf.Path)
	require.Len(t, sf.Steps, 2)
	assert.Equal(t, domain.BuildStep{
		Name:         "compile",
		Targets:      "clean\ncompile\n#deploy\n",
		Installation: "groovy-3",
		ScriptFile:   "build.gant",
		Properties:   "env=prod\nlevel=5\n",
	}, sf.Steps[0])
	assert.Equal(t, "test", sf.Steps[1].Name)
}

func TestLoader_Load_TOML(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, "gant.toml", `
version = "1"

[[steps]]
name = "compile"
installation = "groovy-3"
scriptFile = "build.gant"
targets = "clean compile"
properties = """
env=prod
"""
`)

	sf, err := loader.Load(path)

	require.NoError(t, err)
	require.Len(t, sf.Steps, 1)
	assert.Equal(t, "compile", sf.Steps[0].Name)
	assert.Equal(t, "groovy-3", sf.Steps[0].Installation)
	assert.Equal(t, "build.gant", sf.Steps[0].ScriptFile)
	assert.Equal(t, "clean compile", sf.Steps[0].Targets)
	assert.Equal(t, "env=prod\n", sf.Steps[0].Properties)
}

func TestLoader_Load_TOMLUnknownKeys(t *testing.T) {
	loader, mockLogger := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, "gant.toml", `
[[steps]]
name = "compile"
script_file = "build.gant"

[[steps]]
name = "test"
script_file = "test.gant"
timeout = "5m"
`)

	gomock.InOrder(
		mockLogger.EXPECT().Warn("gant.toml: ignoring unknown key steps.script_file"),
		mockLogger.EXPECT().Warn("gant.toml: ignoring unknown key steps.timeout"),
	)

	sf, err := loader.Load(path)

	require.NoError(t, err)
	require.Len(t, sf.Steps, 2)
	assert.Empty(t, sf.Steps[0].ScriptFile)
}

func TestLoader_Load_DiscoversFromParent(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	path := createFile(t, root, "gant.yml", "steps:\n  - name: build\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	sf, err := loader.Load(nested)

	require.NoError(t, err)
	assert.Equal(t, path, sf.Path)
}

func TestLoader_Load_PrefersYAMLInSameDirectory(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	yamlPath := createFile(t, root, "gant.yaml", "steps:\n  - name: from-yaml\n")
	createFile(t, root, "gant.toml", "[[steps]]\nname = \"from-toml\"\n")

	sf, err := loader.Load(root)

	require.NoError(t, err)
	assert.Equal(t, yamlPath, sf.Path)
	assert.Equal(t, "from-yaml", sf.Steps[0].Name)
}

func TestLoader_Load_Warnings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		warn    string
	}{
		{name: "unknown version", content: "version: \"2\"\nsteps:\n  - name: a\n", warn: `gant.yaml declares version "2", reading it as version 1`},
		{name: "no steps", content: "version: \"1\"\n", warn: "gant.yaml defines no steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, mockLogger := newLoader(t)
			mockLogger.EXPECT().Warn(tt.warn)
			path := createFile(t, t.TempDir(), "gant.yaml", tt.content)

			_, err := loader.Load(path)

			require.NoError(t, err)
		})
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		expectedErr error
	}{
		{
			name:        "missing name",
			file:        "gant.yaml",
			content:     "steps:\n  - targets: build\n",
			expectedErr: domain.ErrMissingStepName,
		},
		{
			name:        "invalid name",
			file:        "gant.yaml",
			content:     "steps:\n  - name: \"has space\"\n",
			expectedErr: domain.ErrInvalidStepName,
		},
		{
			name:        "duplicate name",
			file:        "gant.yaml",
			content:     "steps:\n  - name: build\n  - name: build\n",
			expectedErr: domain.ErrDuplicateStepName,
		},
		{
			name:        "invalid yaml",
			file:        "gant.yaml",
			content:     "steps: [ INVALID\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "invalid toml",
			file:        "gant.toml",
			content:     "[[steps]\nname = \n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "unsupported extension",
			file:        "gant.json",
			content:     "{}",
			expectedErr: domain.ErrUnsupportedConfigFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, mockLogger := newLoader(t)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
			path := createFile(t, t.TempDir(), tt.file, tt.content)

			sf, err := loader.Load(path)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
			assert.Nil(t, sf)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

// Helpers.

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}
