// Package config provides the step file loader for gant.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the step file version understood by this loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader for YAML and TOML step files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validStepNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load reads the step file at path. When path is a directory, the nearest
// step file in it or one of its parents is used.
func (l *Loader) Load(path string) (*domain.StepFile, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var stepfile Stepfile
	unknown, err := readAndUnmarshal(configPath, &stepfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	for _, key := range unknown {
		l.Logger.Warn(fmt.Sprintf("%s: ignoring unknown key %s", filepath.Base(configPath), key))
	}

	if stepfile.Version != "" && stepfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, reading it as version %s",
			filepath.Base(configPath), stepfile.Version, SupportedVersion))
	}

	sf := &domain.StepFile{Path: configPath, Steps: make([]domain.BuildStep, 0, len(stepfile.Steps))}
	seen := make(map[string]bool, len(stepfile.Steps))

	for i, dto := range stepfile.Steps {
		if dto == nil {
			continue
		}
		if err := validateStepName(dto.Name); err != nil {
			return nil, zerr.With(zerr.With(err, "index", i), "path", configPath)
		}
		if seen[dto.Name] {
			err := zerr.Wrap(domain.ErrDuplicateStepName, "step "+dto.Name+" is defined twice")
			return nil, zerr.With(zerr.With(err, "step", dto.Name), "path", configPath)
		}
		seen[dto.Name] = true

		sf.Steps = append(sf.Steps, domain.BuildStep{
			Name:         dto.Name,
			Targets:      dto.Targets,
			Installation: strings.TrimSpace(dto.Installation),
			ScriptFile:   dto.ScriptFile,
			Properties:   dto.Properties,
		})
	}

	if len(sf.Steps) == 0 {
		l.Logger.Warn(filepath.Base(configPath) + " defines no steps")
	}

	return sf, nil
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir := path
	for {
		for _, name := range domain.StepFileNames {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no step file in "+path+" or its parents"), "cwd", path)
}

// readAndUnmarshal decodes the step file into target. For TOML it also returns
// the keys that match no field, sorted and without repeats.
func readAndUnmarshal(configPath string, target *Stepfile) ([]string, error) {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	var unknown []string
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(configFile, target)
	case ".toml":
		var md toml.MetaData
		md, err = toml.Decode(string(configFile), target)
		for _, key := range md.Undecoded() {
			unknown = append(unknown, key.String())
		}
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "cannot read "+filepath.Base(configPath)), "extension", filepath.Ext(configPath))
	}
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	slices.Sort(unknown)
	return slices.Compact(unknown), nil
}

// validateStepName checks that a step name is present and addressable from the command line.
func validateStepName(name string) error {
	if name == "" {
		return zerr.Wrap(domain.ErrMissingStepName, "every step needs a name")
	}
	if !validStepNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidStepName, "invalid step name "+name), "step", name)
	}
	return nil
}
