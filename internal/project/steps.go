package project

import (
	"context"
	"strings"

	"github.com/magic-expo/cli/internal/output"
)

// Step is a post-scaffold command.
type Step struct {
	// Name identifies the step in results and logs.
	Name string

	// Title is shown next to the spinner.
	Title string

	Command string
	Args    []string
}

// StepResult records what happened to a step.
type StepResult struct {
	Step    Step
	Skipped bool
	Err     error
}

// Succeeded reports whether the step ran without error.
func (r StepResult) Succeeded() bool {
	return !r.Skipped && r.Err == nil
}

// Step names.
const (
	StepInstall = "install"
	StepGit     = "git"
)

// InstallStep installs dependencies with the given package manager.
func InstallStep(packageManager string) Step {
	return Step{
		Name:    StepInstall,
		Title:   "Installing dependencies with " + packageManager + "...",
		Command: packageManager,
		Args:    []string{"install"},
	}
}

// GitStep initialises a git repository.
func GitStep() Step {
	return Step{
		Name:    StepGit,
		Title:   "Initializing git...",
		Command: "git",
		Args:    []string{"init"},
	}
}

// runSteps executes every step in dir. A failing step is logged and recorded
// but does not stop later steps; the project files are already in place.
func runSteps(ctx context.Context, runner Runner, dir string, steps []Step, skip map[string]bool) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		if skip[step.Name] {
			output.Debug("skipping step", "step", step.Name)
			results = append(results, StepResult{Step: step, Skipped: true})
			continue
		}

		output.Debug("running step", "step", step.Name,
			"command", step.Command+" "+strings.Join(step.Args, " "), "dir", dir)

		err := output.RunWithSpinner(ctx, func() error {
			return runner.Run(ctx, dir, step.Command, step.Args...)
		}, output.WithTitle(step.Title))
		if err != nil {
			output.Warn("step failed", "step", step.Name, "error", err)
		}
		results = append(results, StepResult{Step: step, Err: err})
	}
	return results
}
