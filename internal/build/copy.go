package build

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
)

// Emits a COPY instruction for a copy step.
//
// Flags are written first, followed by "--from=<name>" when the sources are
// read from another stage or a named build context. Copies from declared
// contexts are recorded so that [Run] can check the context was supplied.
func (r *recipe) executeCopy(s *dockerfile.Stage, copyStr string) error {
	c, err := manifest.ParseCopy(copyStr)
	if err != nil {
		return errors.Wrap(ErrCopy, err.Error())
	}

	args := slices.Clone(c.Flags)
	if c.From != "" {
		if slices.Contains(r.declared, c.From) {
			r.contexts[c.From] = true
		}
		args = append(args, fromFlag(c.From))
	}
	args = append(args, c.Sources...)

	slog.Debug("copy", "from", c.From, "src", c.Sources, "dest", c.Dest)
	s.Copy(strings.Join(args, " "), c.Dest)
	return nil
}

// Returns the COPY flag selecting a source stage or build context.
func fromFlag(name string) string {
	return "--from=" + name
}
