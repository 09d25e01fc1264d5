// Package buildlog implements the append-only build log that Gant output is streamed to.
package buildlog

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// FatalPrefix starts every fatal diagnostic line.
const FatalPrefix = "FATAL: "

// Log is a ports.BuildLog writing to an underlying writer.
//
// Logs derived with WithPrefix share the writer and its lock; they buffer
// partial lines so concurrent steps never interleave inside a line.
type Log struct {
	*sink
	prefix string
	buf    []byte
}

// sink is the writer shared by a Log and the Logs derived from it.
type sink struct {
	mu sync.Mutex
	w  io.Writer
	// midLine is set while the last byte written was not a newline.
	midLine bool
}

// New creates a Log writing to w.
func New(w io.Writer) *Log {
	return &Log{sink: &sink{w: w}}
}

// WithPrefix returns a Log sharing the writer of l that starts every line with prefix.
func (l *Log) WithPrefix(prefix string) *Log {
	return &Log{sink: l.sink, prefix: prefix}
}

// Write appends p to the log.
func (l *Log) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.prefix == "" {
		n, err := l.w.Write(p)
		if n > 0 {
			l.midLine = p[n-1] != '\n'
		}
		return n, err
	}

	l.buf = append(l.buf, p...)
	for {
		i := bytes.IndexByte(l.buf, '\n')
		if i < 0 {
			break
		}
		if err := l.writeLine(l.buf[:i]); err != nil {
			return 0, err
		}
		l.buf = l.buf[i+1:]
	}
	return len(p), nil
}

// Fatal writes msg as a fatal line, followed by the detailed report of err.
func (l *Log) Fatal(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.flush()
	_ = l.writeText(FatalPrefix + msg)
	if err != nil {
		_ = l.writeText(fmt.Sprintf("%+v", err))
	}
}

// Close flushes a trailing partial line.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flush()
}

func (l *Log) flush() error {
	if len(l.buf) == 0 {
		return nil
	}
	err := l.writeLine(l.buf)
	l.buf = nil
	return err
}

func (l *Log) writeText(text string) error {
	for line := range bytes.Lines([]byte(text)) {
		if err := l.writeLine(bytes.TrimSuffix(line, []byte("\n"))); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes one whole line, ending an unfinished line first.
func (l *Log) writeLine(line []byte) error {
	out := make([]byte, 0, len(l.prefix)+len(line)+2)
	if l.midLine {
		out = append(out, '\n')
	}
	out = append(out, l.prefix...)
	out = append(out, bytes.TrimSuffix(line, []byte("\r"))...)
	out = append(out, '\n')
	_, err := l.w.Write(out)
	if err == nil {
		l.midLine = false
	}
	return err
}
