// Package shell provides the process launcher for Gant invocations.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait keeps copying output after the process was killed.
const waitDelay = 2 * time.Second

// Process represents a running command.
type Process interface {
	Wait() error
}

type pipeProcess struct {
	cmd *exec.Cmd
}

func (p *pipeProcess) Wait() error {
	return p.cmd.Wait()
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// Wait for the copy loop to drain what is left on the master side.
	<-p.ioDone
	return err
}

// Launcher implements ports.Launcher using os/exec and pty.
type Launcher struct{}

// NewLauncher creates a new Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch echoes the command line to req.Output, runs the process and waits for it.
func (l *Launcher) Launch(ctx context.Context, req ports.LaunchRequest) (int, error) {
	if len(req.Args) == 0 {
		return -1, zerr.Wrap(domain.ErrLaunchFailed, "empty command line")
	}
	if err := ctx.Err(); err != nil {
		return -1, errors.Join(domain.ErrInterrupted, err)
	}

	out := req.Output
	if out == nil {
		out = io.Discard
	}
	_, _ = fmt.Fprintln(out, FormatCommand(req.Dir, req.Args))

	proc, err := start(ctx, req, out)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, errors.Join(domain.ErrInterrupted, ctxErr)
		}
		return -1, launchFailed(err, req.Args[0])
	}

	err = proc.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, errors.Join(domain.ErrInterrupted, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, launchFailed(err, req.Args[0])
	}
	return 0, nil
}

func launchFailed(err error, name string) error {
	return errors.Join(domain.ErrLaunchFailed, zerr.With(zerr.Wrap(err, "failed to run "+name), "executable", name))
}

func start(ctx context.Context, req ports.LaunchRequest, out io.Writer) (Process, error) {
	name := req.Args[0]
	env := req.Env.List()

	// Resolve the executable against the PATH of the launched environment.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, req.Env["PATH"]); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, req.Args[1:]...) //nolint:gosec // user configured command
	cmd.Args[0] = name
	cmd.Dir = req.Dir
	cmd.Env = env
	cmd.WaitDelay = waitDelay

	if req.TTY {
		proc, err := startPTY(cmd, out)
		if !errors.Is(err, pty.ErrUnsupported) {
			return proc, err
		}
		// Platforms without pseudo terminals use plain pipes.
		cmd = exec.CommandContext(ctx, executable, req.Args[1:]...) //nolint:gosec // user configured command
		cmd.Args[0] = name
		cmd.Dir = req.Dir
		cmd.Env = env
		cmd.WaitDelay = waitDelay
	}

	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &pipeProcess{cmd: cmd}, nil
}

func startPTY(cmd *exec.Cmd, out io.Writer) (Process, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The terminal merges stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	return &ptyProcess{cmd: cmd, ioDone: ioDone}, nil
}

// FormatCommand renders the command line echoed before a launch.
func FormatCommand(dir string, args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			a = strconv.Quote(a)
		}
		quoted[i] = a
	}
	line := "$ " + strings.Join(quoted, " ")
	if dir != "" {
		line = "[" + filepath.Base(dir) + "] " + line
	}
	return line
}

// lookPath searches for an executable in the directories named by path.
func lookPath(file, path string) (string, error) {
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
