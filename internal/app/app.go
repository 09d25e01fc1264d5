// Package app implements the application layer for gant.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/gant/internal/adapters/buildlog"
	"go.trai.ch/gant/internal/adapters/detector"
	"go.trai.ch/gant/internal/adapters/telemetry"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/gant/internal/engine/registry"
	"go.trai.ch/gant/internal/engine/step"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	performer    *step.Performer
	registry     *registry.Registry
	store        ports.InstallationStore
	watcher      ports.Watcher
	metrics      ports.Metrics
	logger       ports.Logger
	output       io.Writer
	environ      func() []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	performer *step.Performer,
	reg *registry.Registry,
	store ports.InstallationStore,
	watcher ports.Watcher,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		performer:    performer,
		registry:     reg,
		store:        store,
		watcher:      watcher,
		metrics:      metrics,
		logger:       log,
		output:       os.Stdout,
		environ:      os.Environ,
	}
}

// WithOutput sets the writer the build log is streamed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.output = w
	return a
}

// WithEnviron sets the source of the base build environment.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// File is the step file, or a directory searched upwards for one.
	File string
	// Dir is the working directory of the launched processes.
	Dir string
	// Variables are key=value build variables, in declaration order.
	Variables []string
	// Parallel is the number of steps run at once. Values below 2 run steps in order.
	Parallel int
	// Timeout bounds the whole run when positive.
	Timeout time.Duration
	// WatchInstallations reloads the installation store while steps run.
	WatchInstallations bool
	// MetricsFile receives the step metrics in textfile format when set.
	MetricsFile string
	// OutputMode is one of auto, tty or plain.
	OutputMode string
}

// Run executes the named steps.
func (a *App) Run(ctx context.Context, stepNames []string, opts RunOptions) error {
	if len(stepNames) == 0 {
		return domain.ErrNoStepsSpecified
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	vars, err := domain.ParseVariables(opts.Variables)
	if err != nil {
		return err
	}

	file, err := a.configLoader.Load(configPath(opts))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	steps, err := selectSteps(file, stepNames)
	if err != nil {
		return err
	}

	installations, err := a.store.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load installations")
	}
	a.registry.ReplaceAll(installations)

	root, err := moduleRoot(file, opts)
	if err != nil {
		return err
	}

	bc := domain.BuildContext{
		Env:         domain.EnvironmentFromList(a.environ()),
		Variables:   vars,
		ModuleRoot:  root,
		Unix:        runtime.GOOS != "windows",
		Interactive: detector.Resolve(detector.ParseMode(opts.OutputMode), a.output),
	}

	tp := telemetry.Setup(a.logger)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	if opts.WatchInstallations {
		stop := a.watchInstallations(ctx)
		defer stop()
	}

	runErr := a.runSteps(ctx, steps, bc, opts.Parallel)

	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	return runErr
}

func (a *App) runSteps(ctx context.Context, steps []domain.BuildStep, bc domain.BuildContext, parallel int) error {
	log := buildlog.New(a.output)

	if parallel < 2 || len(steps) < 2 {
		for _, s := range steps {
			if err := a.perform(ctx, s, bc, log); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, s := range steps {
		stepLog := log.WithPrefix("[" + s.Name + "] ")
		g.Go(func() error {
			defer func() {
				_ = stepLog.Close()
			}()
			return a.perform(ctx, s, bc, stepLog)
		})
	}
	return g.Wait()
}

func (a *App) perform(ctx context.Context, s domain.BuildStep, bc domain.BuildContext, log ports.BuildLog) error {
	ok, err := a.performer.Perform(ctx, s, bc, log)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "step "+s.Name+" did not finish"), "step", s.Name)
	}
	if !ok {
		return errors.Join(domain.ErrBuildStepFailed, zerr.With(zerr.New("step "+s.Name+" failed"), "step", s.Name))
	}
	return nil
}

// watchInstallations reloads the registry whenever the installation store changes.
// The returned function stops the watch and waits for it to end.
func (a *App) watchInstallations(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := a.watcher.Watch(ctx, a.store.Path(), a.reloadInstallations); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to watch installations"))
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (a *App) reloadInstallations() {
	installations, err := a.store.Load()
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to reload installations"))
		return
	}
	a.registry.ReplaceAll(installations)
	a.logger.Info(fmt.Sprintf("reloaded %d installations from %s", len(installations), a.store.Path()))
}

func configPath(opts RunOptions) string {
	switch {
	case opts.File != "":
		return opts.File
	case opts.Dir != "":
		return opts.Dir
	default:
		return "."
	}
}

func moduleRoot(file *domain.StepFile, opts RunOptions) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(file.Path)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "dir", dir)
	}
	return abs, nil
}

func selectSteps(file *domain.StepFile, names []string) ([]domain.BuildStep, error) {
	steps := make([]domain.BuildStep, 0, len(names))
	for _, name := range names {
		s, ok := file.Step(name)
		if !ok {
			err := zerr.Wrap(domain.ErrStepNotFound, fmt.Sprintf("no step named %q in %s", name, file.Path))
			return nil, zerr.With(err, "available", strings.Join(stepNames(file), ", "))
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func stepNames(file *domain.StepFile) []string {
	names := make([]string, 0, len(file.Steps))
	for _, s := range file.Steps {
		names = append(names, s.Name)
	}
	return names
}
