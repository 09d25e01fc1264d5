package domain

const (
	// DisplayName is the human readable name of the build step.
	DisplayName = "Invoke Gant script"

	// HelpFile identifies the help resource of the build step.
	HelpFile = "/plugin/gant/help.html"
)

// BuildStep is one configured invocation of Gant.
type BuildStep struct {
	// Name identifies the step inside its step file.
	Name string
	// Targets holds targets and inline options separated by whitespace or newlines.
	// Tokens starting with '#' are disabled.
	Targets string
	// Installation names the installation to use. Empty selects the default executable.
	Installation string
	// ScriptFile is passed to Gant with -f when set.
	ScriptFile string
	// Properties is a Java properties block turned into -D flags.
	Properties string
}

// StepFile is the parsed content of a step file.
type StepFile struct {
	Path  string
	Steps []BuildStep
}

// Step returns the step with the given name.
func (f *StepFile) Step(name string) (BuildStep, bool) {
	for _, s := range f.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return BuildStep{}, false
}

// StepOutcome classifies how a step ended.
type StepOutcome string

const (
	// OutcomeSuccess means the process exited with status 0.
	OutcomeSuccess StepOutcome = "success"
	// OutcomeFailure means the step could not run or exited non-zero.
	OutcomeFailure StepOutcome = "failure"
	// OutcomeInterrupted means the step was cancelled while running.
	OutcomeInterrupted StepOutcome = "interrupted"
)
