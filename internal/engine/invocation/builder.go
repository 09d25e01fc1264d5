// Package invocation turns a build step into the concrete process to launch.
package invocation

import (
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables exported for a configured installation.
const (
	EnvJavaHome    = "JAVA_HOME"
	EnvAntHome     = "ANT_HOME"
	EnvGroovyHome  = "GROOVY_HOME"
	EnvScriptsHome = "SCRIPTS_HOME"
)

// Build computes the invocation of step using tool and the ambient build context.
//
// Neither step nor tool nor bc is modified. A configured installation whose
// executable is missing fails with domain.ErrExecutableNotFound.
func Build(step domain.BuildStep, tool domain.Tool, bc domain.BuildContext) (domain.Invocation, error) {
	args, err := executable(tool, bc.Unix)
	if err != nil {
		return domain.Invocation{}, err
	}

	if step.ScriptFile != "" {
		args = append(args, "-f", step.ScriptFile)
	}

	env := bc.Env.Clone()
	if inst, ok := tool.Installation(); ok {
		args = applyInstallation(inst, env, args)
	}

	for _, v := range bc.Variables {
		args = append(args, "-D"+v.Key+"="+v.Value)
	}

	if step.Properties != "" {
		flags, err := PropertyFlags(step.Properties, bc.Variables)
		if err != nil {
			return domain.Invocation{}, zerr.With(err, "step", step.Name)
		}
		args = append(args, flags...)
	}

	if step.Targets != "" {
		tokens, err := TokenizeTargets(step.Targets)
		if err != nil {
			return domain.Invocation{}, zerr.With(err, "step", step.Name)
		}
		args = append(args, tokens...)
	}

	return domain.Invocation{Args: args, Env: env, Dir: bc.ModuleRoot}, nil
}

func executable(tool domain.Tool, unix bool) ([]string, error) {
	inst, ok := tool.Installation()
	if !ok {
		if unix {
			return []string{domain.DefaultUnixExecutable}, nil
		}
		return []string{domain.DefaultWindowsLauncher}, nil
	}

	exe := inst.ExecutablePath()
	if !inst.Exists() {
		return nil, zerr.With(zerr.Wrap(domain.ErrExecutableNotFound, exe+" doesn't exist"), "executable", exe)
	}
	return []string{exe}, nil
}

// applyInstallation exports the installation homes into env and returns args
// extended with the scripts home flags. Each variable is set only when its own
// field is configured.
func applyInstallation(inst domain.Installation, env domain.Environment, args []string) []string {
	if inst.JavaHome != "" {
		env[EnvJavaHome] = inst.JavaHome
	}
	if inst.AntHome != "" {
		env[EnvAntHome] = inst.AntHome
	}
	if inst.ToolHome != "" {
		env[EnvGroovyHome] = inst.ToolHome
	}
	if inst.ScriptsHome != "" {
		env[EnvScriptsHome] = inst.ScriptsHome
		args = append(args, "-P", inst.ScriptsHome, "-L", inst.ScriptsHome)
	}
	return args
}
