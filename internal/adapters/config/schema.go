package config

// Stepfile represents the structure of the gant.yaml / gant.toml step file.
type Stepfile struct {
	Version string     `yaml:"version" toml:"version"`
	Steps   []*StepDTO `yaml:"steps" toml:"steps"`
}

// StepDTO represents a build step definition in the configuration.
type StepDTO struct {
	Name         string `yaml:"name" toml:"name"`
	Targets      string `yaml:"targets" toml:"targets"`
	Installation string `yaml:"installation" toml:"installation"`
	ScriptFile   string `yaml:"scriptFile" toml:"scriptFile"`
	Properties   string `yaml:"properties" toml:"properties"`
}
