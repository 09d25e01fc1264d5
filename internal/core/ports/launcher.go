// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/gant/internal/core/domain"
)

// LaunchRequest describes one external process.
type LaunchRequest struct {
	// Args is the command line. Args[0] is the executable.
	Args []string
	// Env is the complete environment of the process.
	Env domain.Environment
	// Dir is the working directory.
	Dir string
	// Output receives both stdout and stderr.
	Output io.Writer
	// TTY attaches the process to a pseudo terminal.
	TTY bool
}

// Launcher starts external processes and waits for them.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs the process and returns its exit code.
	//
	// A process that ran and exited non-zero is not an error. An error is returned
	// when the process could not be started, or wraps domain.ErrInterrupted when ctx
	// was cancelled while waiting; the process is killed in that case.
	Launch(ctx context.Context, req LaunchRequest) (int, error)
}
