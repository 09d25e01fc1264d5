package buildlog_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gant/internal/adapters/buildlog"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLog_WritePassesThrough(t *testing.T) {
	var buf bytes.Buffer
	log := buildlog.New(&buf)

	_, err := fmt.Fprint(log, "partial")
	require.NoError(t, err)
	_, err = fmt.Fprint(log, " line\n")
	require.NoError(t, err)

	assert.Equal(t, "partial line\n", buf.String())
}

func TestLog_Fatal(t *testing.T) {
	var buf bytes.Buffer
	log := buildlog.New(&buf)

	log.Fatal("/opt/groovy/bin/gant doesn't exist", nil)

	assert.Equal(t, "FATAL: /opt/groovy/bin/gant doesn't exist\n", buf.String())
}

func TestLog_FatalWithReport(t *testing.T) {
	var buf bytes.Buffer
	log := buildlog.New(&buf)
	err := zerr.With(zerr.Wrap(domain.ErrLaunchFailed, "exec: permission denied"), "executable", "gant")

	log.Fatal("command execution failed", err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "FATAL: command execution failed", lines[0])
	assert.Contains(t, buf.String(), "permission denied")
}

func TestLog_FatalStartsOnNewLine(t *testing.T) {
	tests := []struct {
		name    string
		written string
		want    string
	}{
		{"partial line", "compiling", "compiling\nFATAL: command execution failed\n"},
		{"whole line", "compiling\n", "compiling\nFATAL: command execution failed\n"},
		{"crlf line", "compiling\r\n", "compiling\r\nFATAL: command execution failed\n"},
		{"nothing written", "", "FATAL: command execution failed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := buildlog.New(&buf)

			_, err := log.Write([]byte(tt.written))
			require.NoError(t, err)
			log.Fatal("command execution failed", nil)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLog_PrefixedLineAfterPartialLine(t *testing.T) {
	var buf bytes.Buffer
	root := buildlog.New(&buf)
	step := root.WithPrefix("[s] ")

	_, _ = root.Write([]byte("progress"))
	_, _ = step.Write([]byte("done\n"))
	_, _ = root.Write([]byte("next\n"))

	assert.Equal(t, "progress\n[s] done\nnext\n", buf.String())
}

func TestLog_PrefixBuffersLines(t *testing.T) {
	var buf bytes.Buffer
	log := buildlog.New(&buf).WithPrefix("[compile] ")

	_, _ = log.Write([]byte("first "))
	assert.Empty(t, buf.String())

	_, _ = log.Write([]byte("line\r\nsecond line\ntail"))
	assert.Equal(t, "[compile] first line\n[compile] second line\n", buf.String())

	require.NoError(t, log.Close())
	assert.Equal(t, "[compile] first line\n[compile] second line\n[compile] tail\n", buf.String())
}

func TestLog_PrefixFatalFlushesPending(t *testing.T) {
	var buf bytes.Buffer
	log := buildlog.New(&buf).WithPrefix("[s] ")

	_, _ = log.Write([]byte("pending"))
	log.Fatal("boom", nil)

	assert.Equal(t, "[s] pending\n[s] FATAL: boom\n", buf.String())
}

func TestLog_ConcurrentPrefixedWritersKeepLinesWhole(t *testing.T) {
	var buf bytes.Buffer
	root := buildlog.New(&buf)

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log := root.WithPrefix("[" + name + "] ")
			for i := range 50 {
				_, _ = fmt.Fprintf(log, "%s-%d", name, i)
				_, _ = log.Write([]byte("\n"))
			}
			_ = log.Close()
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 150)
	for _, line := range lines {
		prefix, rest, ok := strings.Cut(line, "] ")
		require.True(t, ok, line)
		assert.True(t, strings.HasPrefix(rest, strings.TrimPrefix(prefix, "[")+"-"), line)
	}
}
