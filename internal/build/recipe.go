package build

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
)

// Holds shared state for rendering all stages of a recipe.
type recipe struct {
	declared []string        // Named build contexts declared by the manifest.
	contexts map[string]bool // Named build contexts the rendered instructions copy from.
}

// Creates a new [recipe] for a manifest declaring the given contexts.
func newRecipe(declared []string) *recipe {
	return &recipe{
		declared: declared,
		contexts: make(map[string]bool),
	}
}

// Renders the stages of a manifest into f in declaration order.
//
// Each stage is added to the file with its base image, then its steps are
// emitted in order. Rendering stops at the first failing stage.
func (r *recipe) render(f *dockerfile.File, stages []manifest.Stage) error {
	for i, stage := range stages {
		if err := r.renderStage(f, stage, i); err != nil {
			return errors.Wrapf(err, "stage %s", manifest.StageLabel(stage.Name, i))
		}
	}
	return nil
}

// Renders a single stage of a manifest.
func (r *recipe) renderStage(f *dockerfile.File, stage manifest.Stage, index int) error {
	base, err := stage.Base()
	if err != nil {
		return err
	}

	image := base.Image()
	if stage.Name != "" {
		image += " AS " + stage.Name
	}

	slog.Debug("rendering stage", "stage", manifest.StageLabel(stage.Name, index), "from", image)

	var stepErr error
	f.AddStage(image, func(s *dockerfile.Stage) {
		stepErr = r.executeSteps(s, stage.Steps)
	})
	return stepErr
}

// Renders a manifest and returns the recipe state gathered along the way.
func render(m *manifest.Recipe) (dockerfile.Text, *recipe, error) {
	r := newRecipe(m.Contexts)

	var err error
	text := dockerfile.Build(func(f *dockerfile.File) {
		err = r.render(f, m.Stages)
	})
	if err != nil {
		return dockerfile.Text{}, nil, err
	}
	return text, r, nil
}
