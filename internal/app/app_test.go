package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gant/internal/adapters/telemetry"
	"go.trai.ch/gant/internal/app"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/gant/internal/core/ports/mocks"
	"go.trai.ch/gant/internal/engine/registry"
	"go.trai.ch/gant/internal/engine/step"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	launcher *mocks.MockLauncher
	store    *mocks.MockInstallationStore
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
	registry *registry.Registry
	metrics  *telemetry.Metrics
	out      *bytes.Buffer
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		launcher: mocks.NewMockLauncher(ctrl),
		store:    mocks.NewMockInstallationStore(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		registry: registry.New(nil),
		metrics:  telemetry.NewMetrics(),
		out:      &bytes.Buffer{},
		dir:      t.TempDir(),
	}

	performer := step.NewPerformer(f.registry, f.launcher, telemetry.NewNoOpTracer(), f.metrics)
	f.app = app.New(f.loader, performer, f.registry, f.store, f.watcher, f.metrics, f.logger).
		WithOutput(f.out).
		WithEnviron(func() []string { return []string{"PATH=/usr/bin:/bin", "HOME=/home/builder"} })
	return f
}

func (f *fixture) stepFile(steps ...domain.BuildStep) *domain.StepFile {
	return &domain.StepFile{Path: filepath.Join(f.dir, domain.StepFileName), Steps: steps}
}

func TestApp_Run_Success(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile", Targets: "build test #skip"}), nil)
	f.store.EXPECT().Load().Return(nil, nil)

	var got ports.LaunchRequest
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.LaunchRequest) (int, error) {
			got = req
			return 0, nil
		})

	err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"gant", "build", "test"}, got.Args)
	assert.Equal(t, f.dir, got.Dir)
	assert.Equal(t, "/home/builder", got.Env["HOME"])
	assert.False(t, got.TTY, "a buffer is never a terminal")
}

func TestApp_Run_Variables(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("custom.yaml").Return(
		f.stepFile(domain.BuildStep{Name: "dist", Targets: "dist", Properties: "out=${target}/dist"}), nil)
	f.store.EXPECT().Load().Return(nil, nil)

	var got ports.LaunchRequest
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.LaunchRequest) (int, error) {
			got = req
			return 0, nil
		})

	workDir := t.TempDir()
	err := f.app.Run(context.Background(), []string{"dist"}, app.RunOptions{
		File:      "custom.yaml",
		Dir:       workDir,
		Variables: []string{"target=build", "mode=release"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"gant", "-Dtarget=build", "-Dmode=release", "-Dout=build/dist", "dist"}, got.Args)
	assert.Equal(t, workDir, got.Dir)
}

func TestApp_Run_InstalledTool(t *testing.T) {
	f := newFixture(t)

	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "bin", "gant"), []byte("#!/bin/sh\n"), 0o755))

	f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile", Installation: "groovy"}), nil)
	f.store.EXPECT().Load().Return([]domain.Installation{{Name: "groovy", ToolHome: home}}, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.LaunchRequest) (int, error) {
			assert.Equal(t, filepath.Join(home, "bin", "gant"), req.Args[0])
			return 0, nil
		})

	require.NoError(t, f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{}))

	inst, ok := f.registry.Resolve("groovy")
	assert.True(t, ok)
	assert.Equal(t, home, inst.ToolHome)
}

func TestApp_Run_StepFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.stepFile(
		domain.BuildStep{Name: "compile"},
		domain.BuildStep{Name: "test"},
	), nil)
	f.store.EXPECT().Load().Return(nil, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(1, nil)

	err := f.app.Run(context.Background(), []string{"compile", "test"}, app.RunOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildStepFailed))
	assert.ErrorContains(t, err, "step compile failed")
}

func TestApp_Run_Interrupted(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile"}), nil)
	f.store.EXPECT().Load().Return(nil, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(-1, domain.ErrInterrupted)

	err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInterrupted))
	assert.False(t, errors.Is(err, domain.ErrBuildStepFailed))
}

func TestApp_Run_Parallel(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.stepFile(
		domain.BuildStep{Name: "compile", Targets: "compile"},
		domain.BuildStep{Name: "docs", Targets: "docs"},
	), nil)
	f.store.EXPECT().Load().Return(nil, nil)

	var mu sync.Mutex
	var targets []string
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, req ports.LaunchRequest) (int, error) {
			mu.Lock()
			targets = append(targets, req.Args[1])
			mu.Unlock()
			_, _ = req.Output.Write([]byte("done\n"))
			return 0, nil
		})

	err := f.app.Run(context.Background(), []string{"compile", "docs"}, app.RunOptions{Parallel: 2})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"compile", "docs"}, targets)
	assert.Contains(t, f.out.String(), "[compile] done\n")
	assert.Contains(t, f.out.String(), "[docs] done\n")
}

func TestApp_Run_MetricsFile(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile"}), nil)
	f.store.EXPECT().Load().Return(nil, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(0, nil)

	path := filepath.Join(t.TempDir(), "gant.prom")
	require.NoError(t, f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{MetricsFile: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gant_step_results_total{result="success"} 1`)
}

func TestApp_Run_WatchInstallations(t *testing.T) {
	f := newFixture(t)
	storePath := filepath.Join(f.dir, "installations.json")

	f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile"}), nil)
	f.store.EXPECT().Path().Return(storePath).AnyTimes()
	f.store.EXPECT().Load().Return(nil, nil).Times(2)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(0, nil)
	f.logger.EXPECT().Info("reloaded 0 installations from " + storePath)
	f.watcher.EXPECT().Watch(gomock.Any(), storePath, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, onChange func()) error {
			onChange()
			<-ctx.Done()
			return nil
		})

	err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{WatchInstallations: true})

	require.NoError(t, err)
}

func TestApp_Run_Errors(t *testing.T) {
	t.Run("no steps", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.Run(context.Background(), nil, app.RunOptions{})
		assert.True(t, errors.Is(err, domain.ErrNoStepsSpecified))
	})

	t.Run("invalid variable", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{Variables: []string{"novalue"}})
		assert.True(t, errors.Is(err, domain.ErrInvalidVariable))
	})

	t.Run("config failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(".").Return(nil, failure(domain.ErrConfigNotFound))
		err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{})
		assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	t.Run("unknown step", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile"}), nil)
		err := f.app.Run(context.Background(), []string{"deploy"}, app.RunOptions{})
		assert.True(t, errors.Is(err, domain.ErrStepNotFound))
		assert.ErrorContains(t, err, `no step named "deploy"`)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(".").Return(f.stepFile(domain.BuildStep{Name: "compile"}), nil)
		f.store.EXPECT().Load().Return(nil, failure(domain.ErrStoreReadFailed))
		err := f.app.Run(context.Background(), []string{"compile"}, app.RunOptions{})
		assert.True(t, errors.Is(err, domain.ErrStoreReadFailed))
	})
}

// failure joins sentinel with an underlying cause the way adapters report errors.
func failure(sentinel error) error {
	return errors.Join(sentinel, errors.New("underlying failure"))
}
