package dockerfile

import (
	"strings"

	"github.com/pkg/errors"
)

// Separator placed between rendered stages.
const stageSeparator = "\n\n"

// Sequences the stages of a multi-stage Dockerfile.
//
// Stages are rendered in the order they were added. A file is rendered once
// its stages are complete; rendering freezes the file and every stage, and
// later attempts to add stages or append instructions panic with [ErrFrozen].
type File struct {
	stages []*Stage // Stages in the order they were added.
	frozen bool     // Set by the first call to Render.
}

// Creates an empty [File].
func New() *File {
	return &File{}
}

// Creates a stage based on the given image, populates it with fn and
// appends it to the file.
//
// Panics with [ErrFrozen] if the file has already been rendered.
func (f *File) AddStage(base string, fn func(s *Stage)) *Stage {
	if f.frozen {
		panic(errors.Wrapf(ErrFrozen, "cannot add stage %s", base))
	}
	s := NewStage(base)
	if fn != nil {
		fn(s)
	}
	f.stages = append(f.stages, s)
	return s
}

// Returns the number of stages added so far.
func (f *File) Stages() int {
	return len(f.stages)
}

// Renders every stage and joins them with a blank line.
//
// Rendering does not change the text a file produces; calling Render again
// yields the same result.
func (f *File) Render() string {
	f.frozen = true
	parts := make([]string, len(f.stages))
	for i, s := range f.stages {
		s.frozen = true
		parts[i] = s.Render()
	}
	return strings.Join(parts, stageSeparator)
}

// Renders the file as a [Text] recipe.
func (f *File) Text() Text {
	return Text{Dockerfile: f.Render()}
}
