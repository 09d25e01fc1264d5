// Package step performs a single Gant build step.
package step

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/gant/internal/engine/invocation"
)

// SpanName is the name of the span wrapping one step execution.
const SpanName = "gant.step"

const (
	msgLaunchFailed  = "command execution failed"
	msgInvalidConfig = "invalid build step configuration"
)

// Performer runs build steps.
type Performer struct {
	resolver ports.InstallationResolver
	launcher ports.Launcher
	tracer   ports.Tracer
	metrics  ports.Metrics
}

// NewPerformer creates a new Performer with the given dependencies.
func NewPerformer(
	resolver ports.InstallationResolver,
	launcher ports.Launcher,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Performer {
	return &Performer{
		resolver: resolver,
		launcher: launcher,
		tracer:   tracer,
		metrics:  metrics,
	}
}

// Perform runs step and reports whether it succeeded.
//
// Configuration problems and launch failures are written to log as fatal lines
// and reported as false with a nil error. The only error returned wraps
// domain.ErrInterrupted, when ctx is cancelled while the process runs.
func (p *Performer) Perform(
	ctx context.Context,
	step domain.BuildStep,
	bc domain.BuildContext,
	log ports.BuildLog,
) (bool, error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, SpanName)
	defer span.End()

	tool := domain.DefaultTool()
	if inst, ok := p.resolver.Resolve(step.Installation); ok {
		tool = domain.InstalledTool(inst)
	}
	span.SetAttribute("step", step.Name)
	span.SetAttribute("installation", tool.String())

	inv, err := invocation.Build(step, tool, bc)
	if err != nil {
		span.RecordError(err)
		if inst, ok := tool.Installation(); ok && errors.Is(err, domain.ErrExecutableNotFound) {
			log.Fatal(inst.ExecutablePath()+" doesn't exist", nil)
		} else {
			log.Fatal(msgInvalidConfig, err)
		}
		p.observe(step, domain.OutcomeFailure, start)
		return false, nil
	}

	code, err := p.launcher.Launch(ctx, ports.LaunchRequest{
		Args:   inv.Args,
		Env:    inv.Env,
		Dir:    inv.Dir,
		Output: log,
		TTY:    bc.Interactive,
	})
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrInterrupted) {
			p.observe(step, domain.OutcomeInterrupted, start)
			return false, err
		}
		log.Fatal(msgLaunchFailed, err)
		p.observe(step, domain.OutcomeFailure, start)
		return false, nil
	}

	span.SetAttribute("exit_code", code)
	if code != 0 {
		p.observe(step, domain.OutcomeFailure, start)
		return false, nil
	}
	p.observe(step, domain.OutcomeSuccess, start)
	return true, nil
}

func (p *Performer) observe(step domain.BuildStep, outcome domain.StepOutcome, start time.Time) {
	p.metrics.ObserveStep(step.Name, outcome, time.Since(start))
}
