package ports

import "context"

// Watcher notifies about content changes of a single file.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange each time the content of path changes.
	Watch(ctx context.Context, path string, onChange func()) error
}
