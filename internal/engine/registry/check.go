package registry

import (
	"os"
	"path/filepath"

	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckToolHome checks path for a Groovy home that ships the Gant launcher.
// The result is advisory: execution never consults it.
func CheckToolHome(path string) domain.ValidationResult {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return invalid(domain.ErrNotADirectory, path+" is not a directory", path)
	}

	if !anyExists(filepath.Join(path, "bin"), "groovy", "groovy.bat") {
		return invalid(domain.ErrNotAToolHome, path+" doesn't look like a Groovy directory", path)
	}

	if !anyExists(filepath.Join(path, "bin"), "gant", "gant.bat") {
		return invalid(domain.ErrToolMissing, path+" looks like a Groovy but Gant is not found in here", path)
	}

	return domain.ValidationResult{}
}

func invalid(sentinel error, msg, path string) domain.ValidationResult {
	return domain.ValidationResult{
		Message: msg,
		Err:     zerr.With(zerr.Wrap(sentinel, msg), "path", path),
	}
}

func anyExists(dir string, names ...string) bool {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
