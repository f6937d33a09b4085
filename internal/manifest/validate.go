package manifest

import (
	"slices"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// Tracks stage references while a recipe is validated.
type validator struct {
	g        graph.Graph[string, string] // Stages declared so far, linked by the copies between them.
	contexts []string                    // Named build contexts declared by the recipe.
}

// Checks the structure of the recipe and its cross-stage references.
//
// Every stage must select exactly one base image and every step exactly one
// operation. Groups may only contain run steps and groups. Stage and context
// names must be unique, and a prefixed copy source may only reference a
// declared context or a stage declared before the one it appears in, by
// name or by index.
func (r *Recipe) Validate() error {
	if len(r.Stages) == 0 {
		return errors.Wrap(ErrInvalidRecipe, "no stages")
	}

	v := &validator{
		g: graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
	}

	for _, name := range r.Contexts {
		if name == "" {
			return errors.Wrap(ErrInvalidRecipe, "empty context name")
		}
		if slices.Contains(v.contexts, name) {
			return errors.Wrapf(ErrInvalidRecipe, "duplicate context %q", name)
		}
		v.contexts = append(v.contexts, name)
	}

	for i, stage := range r.Stages {
		label := StageLabel(stage.Name, i)

		if _, err := stage.Base(); err != nil {
			return errors.Wrapf(err, "stage %s", label)
		}

		// A stage can be referenced by its index as well as by its name.
		aliases := stageAliases(stage.Name, i)
		for _, alias := range aliases {
			if slices.Contains(v.contexts, alias) {
				return errors.Wrapf(ErrInvalidRecipe, "stage %s shadows context %q", label, alias)
			}
			if err := v.g.AddVertex(alias); err != nil {
				if errors.Is(err, graph.ErrVertexAlreadyExists) {
					return errors.Wrapf(ErrInvalidRecipe, "duplicate stage name %q", alias)
				}
				return errors.Wrap(ErrInvalidRecipe, err.Error())
			}
		}

		if err := v.steps(aliases, stage.Steps, false); err != nil {
			return errors.Wrapf(err, "stage %s", label)
		}
	}

	return nil
}

// Validates a list of steps and records their cross-stage references as
// edges into the stage known by the given aliases.
func (v *validator) steps(aliases []string, steps []Step, scoped bool) error {
	for i, step := range steps {
		if err := v.step(aliases, step, scoped); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Validates a single step.
func (v *validator) step(aliases []string, step Step, scoped bool) error {
	if step.IsGroup() {
		if step.operations() != 0 {
			return errors.Wrap(ErrInvalidStep, "group may only set workdir besides steps")
		}
		return v.steps(aliases, step.Steps, true)
	}

	if n := step.operations(); n != 1 {
		return errors.Wrapf(ErrInvalidStep, "expected exactly one operation, got %d", n)
	}

	if scoped && step.Run == "" {
		return errors.Wrap(ErrInvalidStep, "groups may only contain run steps")
	}

	if step.Copy != "" {
		return v.copy(aliases, step.Copy)
	}
	return nil
}

// Validates a copy string and links the referenced stage, if any.
func (v *validator) copy(aliases []string, copyStr string) error {
	c, err := ParseCopy(copyStr)
	if err != nil {
		return err
	}

	if c.From == "" || slices.Contains(v.contexts, c.From) {
		return nil
	}

	if slices.Contains(aliases, c.From) {
		return errors.Wrapf(ErrUnknownStage, "stage %q copies from itself", c.From)
	}

	err = v.g.AddEdge(c.From, aliases[0])
	switch {
	case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
		return nil
	case errors.Is(err, graph.ErrVertexNotFound):
		return errors.Wrapf(ErrUnknownStage, "%q is neither a context nor a stage declared before this one", c.From)
	default:
		return errors.Wrapf(ErrUnknownStage, "%q: %v", c.From, err)
	}
}

// Returns the graph vertices of a stage: its 0-based index, and its name
// when it has one.
func stageAliases(name string, index int) []string {
	aliases := []string{strconv.Itoa(index)}
	if name != "" && name != aliases[0] {
		aliases = append(aliases, name)
	}
	return aliases
}

// Returns a label for a stage, preferring the name when available and falling
// back to the 1-based index.
func StageLabel(name string, index int) string {
	if name != "" {
		return strconv.Quote(name)
	}
	return strconv.Itoa(index + 1)
}
