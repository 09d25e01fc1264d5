package domain

import (
	"os"
	"path/filepath"
)

const (
	// StepFileName is the default name of the step file.
	StepFileName = "gant.yaml"

	// ConfigDirName is the name of the per-user configuration directory.
	ConfigDirName = "gant"

	// InstallationsFileName is the name of the installation store file.
	InstallationsFileName = "installations.json"

	// InstallationsEnvVar overrides the location of the installation store.
	InstallationsEnvVar = "GANT_INSTALLATIONS"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StepFileNames lists the step file names searched for, in order of preference.
var StepFileNames = []string{StepFileName, "gant.yml", "gant.toml"}

// DefaultInstallationsPath returns the location of the installation store.
// GANT_INSTALLATIONS wins; otherwise the file lives in the user config directory,
// falling back to a .gant directory in the working directory.
func DefaultInstallationsPath() string {
	if p := os.Getenv(InstallationsEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+ConfigDirName, InstallationsFileName)
	}
	return filepath.Join(dir, ConfigDirName, InstallationsFileName)
}
