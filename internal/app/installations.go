package app

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/engine/registry"
	"go.trai.ch/zerr"
)

// CheckHome runs the advisory tool home check on path.
func (a *App) CheckHome(path string) domain.ValidationResult {
	return registry.CheckToolHome(path)
}

// Installations returns the stored installations in order.
func (a *App) Installations() ([]domain.Installation, error) {
	installations, err := a.store.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load installations")
	}
	return installations, nil
}

// AddInstallation stores inst, replacing an installation with the same name.
// A tool home that fails the advisory check is stored anyway with a warning.
func (a *App) AddInstallation(inst domain.Installation) error {
	inst.Name = strings.TrimSpace(inst.Name)
	if inst.Name == "" {
		return zerr.Wrap(domain.ErrMissingInstallationName, "every installation needs a name")
	}

	if inst.ToolHome != "" {
		if res := registry.CheckToolHome(inst.ToolHome); !res.OK() {
			a.logger.Warn(res.Message)
		}
	}

	installations, err := a.Installations()
	if err != nil {
		return err
	}

	if i := indexOf(installations, inst.Name); i >= 0 {
		installations[i] = inst
	} else {
		installations = append(installations, inst)
	}

	return a.save(installations)
}

// RemoveInstallation deletes every stored installation called name.
func (a *App) RemoveInstallation(name string) error {
	installations, err := a.Installations()
	if err != nil {
		return err
	}

	if indexOf(installations, name) < 0 {
		err := zerr.Wrap(domain.ErrInstallationNotFound, fmt.Sprintf("no installation named %q", name))
		return zerr.With(err, "store", a.store.Path())
	}

	return a.save(slices.DeleteFunc(installations, func(i domain.Installation) bool {
		return i.Name == name
	}))
}

func (a *App) save(installations []domain.Installation) error {
	if err := a.store.Save(installations); err != nil {
		return zerr.Wrap(err, "failed to save installations")
	}
	a.registry.ReplaceAll(installations)
	return nil
}

func indexOf(installations []domain.Installation, name string) int {
	return slices.IndexFunc(installations, func(i domain.Installation) bool {
		return i.Name == name
	})
}
