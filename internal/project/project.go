// Package project runs the end-to-end create and apply flows: assemble the
// manifest, write it, verify it, then run the post-scaffold steps.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/magic-expo/cli/internal/config"
	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/scaffold"
	"github.com/magic-expo/cli/internal/templates"
)

// CreateOptions configures Create.
type CreateOptions struct {
	// Config is a resolved configuration.
	Config options.Config

	// ParentDir holds the new project directory. Defaults to ".".
	ParentDir string

	// Dir, when set, is the project directory itself and ParentDir is ignored.
	Dir string

	// PackageManager runs the install step. Defaults to bun.
	PackageManager string

	// Runner executes post steps. Defaults to ExecRunner.
	Runner Runner

	// Reporter receives scaffold events in addition to the result collector.
	Reporter scaffold.Reporter
}

// ApplyOptions configures Apply.
type ApplyOptions struct {
	Config         options.Config
	Dir            string
	Overwrite      bool
	PackageManager string
	Runner         Runner
	Reporter       scaffold.Reporter
}

// Result describes a finished run.
type Result struct {
	// Dir is the absolute project directory.
	Dir string

	Manifest *templates.Manifest
	Events   *scaffold.Collector
	Steps    []StepResult
}

// StepSucceeded reports whether the named step ran successfully.
func (r *Result) StepSucceeded(name string) bool {
	for _, s := range r.Steps {
		if s.Step.Name == name {
			return s.Succeeded()
		}
	}
	return false
}

// TargetDir returns the directory Create will use.
func (o CreateOptions) TargetDir() string {
	if o.Dir != "" {
		return o.Dir
	}
	parent := o.ParentDir
	if parent == "" {
		parent = "."
	}
	return filepath.Join(parent, o.Config.ProjectName)
}

// Create scaffolds a new project. The target directory must not exist; it is
// claimed with a single non-recursive mkdir once the manifest is assembled, so
// a rejected configuration leaves nothing behind.
func Create(ctx context.Context, opts CreateOptions) (*Result, error) {
	if err := templates.ValidateProjectName(opts.Config.ProjectName); err != nil {
		return nil, err
	}

	packageManager, err := packageManagerOrDefault(opts.PackageManager)
	if err != nil {
		return nil, err
	}

	manifest, err := templates.Assemble(opts.Config)
	if err != nil {
		return nil, err
	}

	targetDir := opts.TargetDir()
	if err := os.Mkdir(targetDir, 0o755); err != nil {
		return nil, mkdirError(targetDir, err)
	}

	output.Debug("claimed target directory", "dir", targetDir)

	return run(ctx, manifest, runOptions{
		cfg:            opts.Config,
		dir:            targetDir,
		overwrite:      false,
		packageManager: packageManager,
		runner:         opts.Runner,
		reporter:       opts.Reporter,
	})
}

// Apply scaffolds into an existing directory. Existing files are kept unless
// Overwrite is set.
func Apply(ctx context.Context, opts ApplyOptions) (*Result, error) {
	info, err := os.Stat(opts.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("directory %s does not exist", opts.Dir), opts.Dir,
				"Use 'magic-expo create' to start a new project.")
		}
		return nil, fmt.Errorf("checking %s: %w", opts.Dir, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", opts.Dir), "dir", "")
	}

	packageManager, err := packageManagerOrDefault(opts.PackageManager)
	if err != nil {
		return nil, err
	}

	manifest, err := templates.Assemble(opts.Config)
	if err != nil {
		return nil, err
	}

	return run(ctx, manifest, runOptions{
		cfg:            opts.Config,
		dir:            opts.Dir,
		overwrite:      opts.Overwrite,
		packageManager: packageManager,
		runner:         opts.Runner,
		reporter:       opts.Reporter,
	})
}

type runOptions struct {
	cfg            options.Config
	dir            string
	overwrite      bool
	packageManager string
	runner         Runner
	reporter       scaffold.Reporter
}

func run(ctx context.Context, manifest *templates.Manifest, o runOptions) (*Result, error) {
	absDir, err := filepath.Abs(o.dir)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	collector := scaffold.NewCollector(o.reporter)
	if err := scaffold.Scaffold(ctx, absDir, manifest, o.overwrite, scaffold.WithReporter(collector)); err != nil {
		return nil, err
	}

	if ok, missing := scaffold.Verify(absDir); !ok {
		return nil, oerrors.NewIncompleteError(absDir, missing)
	}

	result := &Result{
		Dir:      absDir,
		Manifest: manifest,
		Events:   collector,
	}

	runner := o.runner
	if runner == nil {
		runner = ExecRunner{}
	}

	result.Steps = runSteps(ctx, runner, absDir,
		[]Step{InstallStep(o.packageManager), GitStep()},
		map[string]bool{
			StepInstall: o.cfg.SkipInstall,
			StepGit:     o.cfg.SkipGit,
		})

	return result, nil
}

func packageManagerOrDefault(name string) (string, error) {
	if name == "" {
		return config.DefaultPackageManager, nil
	}
	if err := config.ValidatePackageManager(name); err != nil {
		return "", err
	}
	return name, nil
}

func mkdirError(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return oerrors.NewExistsError(dir)
	case errors.Is(err, fs.ErrPermission):
		return oerrors.NewPermissionError(fmt.Sprintf("creating %s", dir), dir)
	case errors.Is(err, fs.ErrNotExist):
		return oerrors.NewNotFoundError(
			fmt.Sprintf("parent directory of %s does not exist", dir), filepath.Dir(dir),
			"Create the parent directory first or choose another --dir.")
	default:
		return fmt.Errorf("creating %s: %w", dir, err)
	}
}

// NextSteps returns the shell commands a user runs after the project exists.
// Install is listed when it did not run successfully.
func (r *Result) NextSteps(cdPath, packageManager string) []string {
	if packageManager == "" {
		packageManager = config.DefaultPackageManager
	}

	steps := []string{"cd " + cdPath}
	if !r.StepSucceeded(StepInstall) {
		steps = append(steps, packageManager+" install")
	}
	return append(steps,
		packageManager+" run start",
		packageManager+" run build",
	)
}
