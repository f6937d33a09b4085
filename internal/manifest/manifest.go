package manifest

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
)

// An ordered list of build stages.
//
// Contexts declares the named build contexts that copy steps may read from
// with a "name:path" source. Their directories are supplied at build time.
type Recipe struct {
	Contexts []string `yaml:"contexts,omitempty"` // Named build contexts.
	Stages   []Stage  `yaml:"stages"`             // Stages in build order.
}

// A single build stage.
//
// Exactly one of From, JDK or Corretto selects the base image.
type Stage struct {
	Name     string `yaml:"name,omitempty"`     // Optional name, used by cross-stage copies.
	From     string `yaml:"from,omitempty"`     // Full base image reference.
	JDK      string `yaml:"jdk,omitempty"`      // OpenJDK version.
	Corretto string `yaml:"corretto,omitempty"` // Amazon Corretto version.
	Steps    []Step `yaml:"steps,omitempty"`    // Steps in emission order.
}

// A single step of a stage.
//
// A step sets exactly one operation field, or lists nested Steps to form a
// group. Workdir is an operation on its own and the scope of a group when
// Steps is set.
type Step struct {
	Run       string `yaml:"run,omitempty"`       // Shell command line.
	Copy      string `yaml:"copy,omitempty"`      // "[--flag ...] src... dest", see [ParseCopy].
	Add       string `yaml:"add,omitempty"`       // ADD arguments.
	Workdir   string `yaml:"workdir,omitempty"`   // Working directory.
	User      string `yaml:"user,omitempty"`      // User name or UID.
	Cmd       string `yaml:"cmd,omitempty"`       // CMD arguments.
	Arg       string `yaml:"arg,omitempty"`       // ARG declaration.
	Env       string `yaml:"env,omitempty"`       // ENV assignment.
	JProfiler bool   `yaml:"jprofiler,omitempty"` // Install the JProfiler agent.
	Steps     []Step `yaml:"steps,omitempty"`     // Nested steps of a group.
}

// Reads and validates the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrFileSystemOperation, err.Error())
	}

	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return r, nil
}

// Decodes and validates a recipe document.
//
// Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, errors.Wrap(ErrInvalidRecipe, err.Error())
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Returns the base image of the stage.
func (s Stage) Base() (dockerfile.Base, error) {
	var bases []dockerfile.Base
	if s.From != "" {
		bases = append(bases, dockerfile.Image(s.From))
	}
	if s.JDK != "" {
		bases = append(bases, dockerfile.OpenJDK(s.JDK))
	}
	if s.Corretto != "" {
		bases = append(bases, dockerfile.AmazonCorretto(s.Corretto))
	}

	if len(bases) != 1 {
		return nil, errors.Wrapf(ErrInvalidRecipe, "expected exactly one of from, jdk or corretto, got %d", len(bases))
	}
	return bases[0], nil
}

// Whether the step is a group of nested steps.
func (s Step) IsGroup() bool {
	return len(s.Steps) > 0
}

// Returns the number of operation fields set on the step, not counting
// Workdir when it scopes a group.
func (s Step) operations() int {
	n := 0
	for _, v := range []string{s.Run, s.Copy, s.Add, s.User, s.Cmd, s.Arg, s.Env} {
		if v != "" {
			n++
		}
	}
	if s.JProfiler {
		n++
	}
	if s.Workdir != "" && !s.IsGroup() {
		n++
	}
	return n
}
