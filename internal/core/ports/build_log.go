package ports

import "io"

// BuildLog is the append-only log of a build step.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_log.go -destination=mocks/mock_build_log.go -package=mocks
type BuildLog interface {
	io.Writer
	// Fatal writes a fatal diagnostic line, followed by a detailed report of err when err is not nil.
	Fatal(msg string, err error)
}
