package build

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
	"github.com/cruciblehq/dockrecipe/internal/dockerfile/jprofiler"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
)

// Emits the instructions of a list of steps in order.
func (r *recipe) executeSteps(s *dockerfile.Stage, steps []manifest.Step) error {
	for i, step := range steps {
		if err := r.executeStep(s, step); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Emits the instructions of a single step, dispatching to a scoped group or
// to the instruction matching the step's operation.
func (r *recipe) executeStep(s *dockerfile.Stage, step manifest.Step) error {
	if step.IsGroup() {
		return s.RunScoped(step.Workdir, func(c *dockerfile.Commander) error {
			return executeScoped(c, step.Steps)
		})
	}

	switch {
	case step.Run != "":
		slog.Debug("run", "command", step.Run)
		s.RunRaw(step.Run)
	case step.Copy != "":
		return r.executeCopy(s, step.Copy)
	case step.Add != "":
		s.Add(step.Add)
	case step.Workdir != "":
		s.SetWorkdir(step.Workdir)
	case step.User != "":
		s.User(step.User)
	case step.Cmd != "":
		s.Cmd(step.Cmd)
	case step.Arg != "":
		s.Arg(step.Arg)
	case step.Env != "":
		s.Env(step.Env)
	case step.JProfiler:
		jprofiler.CopyAndInstall(s)
		r.contexts[jprofiler.ContextName] = true
	default:
		return errors.Wrap(ErrBuild, "step has no operation")
	}

	return nil
}

// Emits the run steps of a group through the group's commander.
//
// Nested groups open nested working directory scopes.
func executeScoped(c *dockerfile.Commander, steps []manifest.Step) error {
	for i, step := range steps {
		switch {
		case step.IsGroup():
			err := c.WithWorkdir(step.Workdir, func(c *dockerfile.Commander) error {
				return executeScoped(c, step.Steps)
			})
			if err != nil {
				return err
			}
		case step.Run != "":
			slog.Debug("run", "command", step.Run, "scoped", true)
			c.Run(step.Run)
		default:
			return errors.Wrapf(ErrBuild, "scoped step %d: only run steps are allowed", i+1)
		}
	}
	return nil
}
