package domain

import "go.trai.ch/zerr"

var (
	// ErrExecutableNotFound is returned when a configured installation points at a
	// Gant executable that does not exist on disk.
	ErrExecutableNotFound = zerr.New("gant executable not found")

	// ErrLaunchFailed is returned when the external process could not be started.
	ErrLaunchFailed = zerr.New("failed to launch process")

	// ErrInterrupted is returned when a running step is cancelled while waiting
	// on the external process.
	ErrInterrupted = zerr.New("execution interrupted")

	// ErrBuildStepFailed is returned when a build step reports failure.
	ErrBuildStepFailed = zerr.New("build step failed")

	// ErrInvalidProperties is returned when a step's properties block cannot be parsed.
	ErrInvalidProperties = zerr.New("invalid properties")

	// ErrInvalidTargets is returned when a step's targets cannot be tokenized.
	ErrInvalidTargets = zerr.New("invalid targets")

	// ErrInvalidVariable is returned when a build variable is not in key=value form.
	ErrInvalidVariable = zerr.New("invalid build variable, expected key=value")

	// ErrNotADirectory is returned when a tool home is not a directory.
	ErrNotADirectory = zerr.New("not a directory")

	// ErrNotAToolHome is returned when a directory does not contain a Groovy runtime.
	ErrNotAToolHome = zerr.New("not a Groovy directory")

	// ErrToolMissing is returned when a Groovy home does not contain Gant.
	ErrToolMissing = zerr.New("gant is not installed in Groovy home")

	// ErrConfigNotFound is returned when no step file is found.
	ErrConfigNotFound = zerr.New("could not find gant.yaml, gant.yml or gant.toml")

	// ErrConfigReadFailed is returned when the step file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the step file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned for step files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format, expected .yaml, .yml or .toml")

	// ErrMissingStepName is returned when a step in the step file has no name.
	ErrMissingStepName = zerr.New("missing step name")

	// ErrInvalidStepName is returned when a step name contains invalid characters.
	ErrInvalidStepName = zerr.New("step name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateStepName is returned when two steps share a name.
	ErrDuplicateStepName = zerr.New("duplicate step name")

	// ErrNoStepsSpecified is returned when a run names no steps.
	ErrNoStepsSpecified = zerr.New("no steps specified")

	// ErrStepNotFound is returned when a requested step is not defined in the step file.
	ErrStepNotFound = zerr.New("step not found")

	// ErrMissingInstallationName is returned when an installation has no name.
	ErrMissingInstallationName = zerr.New("missing installation name")

	// ErrInstallationNotFound is returned when removing an installation that does not exist.
	ErrInstallationNotFound = zerr.New("installation not found")

	// ErrStoreReadFailed is returned when the installation store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read installation store")

	// ErrStoreUnmarshalFailed is returned when the installation store cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal installation store")

	// ErrStoreMarshalFailed is returned when the installation list cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal installation store")

	// ErrStoreWriteFailed is returned when the installation store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write installation store")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")

	// ErrUnknownLogFormat is returned when GANT_LOG_FORMAT names an unsupported format.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected pretty or json")
)
