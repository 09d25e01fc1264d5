// Package registry holds the set of known Gant installations.
package registry

import (
	"slices"
	"sync/atomic"

	"go.trai.ch/gant/internal/core/domain"
)

// Registry is a snapshot of named installations.
// Readers never lock; ReplaceAll swaps in a new snapshot.
// The zero value is an empty registry.
type Registry struct {
	snapshot atomic.Pointer[[]domain.Installation]
}

// New creates a Registry holding a copy of installations.
func New(installations []domain.Installation) *Registry {
	r := &Registry{}
	r.ReplaceAll(installations)
	return r
}

// Resolve returns the first installation whose name equals name.
// It reports false for an empty name or when no installation matches.
func (r *Registry) Resolve(name string) (domain.Installation, bool) {
	if name == "" {
		return domain.Installation{}, false
	}
	for _, inst := range r.current() {
		if inst.Name == name {
			return inst, true
		}
	}
	return domain.Installation{}, false
}

// ReplaceAll replaces the known installations with a copy of installations.
func (r *Registry) ReplaceAll(installations []domain.Installation) {
	list := slices.Clone(installations)
	if list == nil {
		list = []domain.Installation{}
	}
	r.snapshot.Store(&list)
}

// Installations returns a copy of the current installations.
func (r *Registry) Installations() []domain.Installation {
	return slices.Clone(r.current())
}

func (r *Registry) current() []domain.Installation {
	if list := r.snapshot.Load(); list != nil {
		return *list
	}
	return []domain.Installation{}
}
