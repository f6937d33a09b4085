package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/dockrecipe/internal/build"
	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
)

// Represents the 'dockrecipe render' command.
type RenderCmd struct {
	Recipe string `arg:"" help:"Path to the recipe file." type:"existingfile"`
	Output string `short:"o" help:"Write the Dockerfile into this directory instead of printing it." placeholder:"DIR"`
}

// Executes the render command.
//
// The rendered Dockerfile is printed to standard output unless an output
// directory is given.
func (c *RenderCmd) Run(ctx context.Context) error {
	m, err := manifest.Load(c.Recipe)
	if err != nil {
		return err
	}

	text, err := build.Render(m)
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Println(text.Dockerfile)
		return nil
	}

	path, err := dockerfile.Write(c.Output, text)
	if err != nil {
		return err
	}

	slog.Info("recipe rendered", "path", path, "digest", dockerfile.Digest(text).String())
	return nil
}
