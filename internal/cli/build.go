package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/dockrecipe/internal/build"
	"github.com/cruciblehq/dockrecipe/internal/dockerfile/jprofiler"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
)

// Represents the 'dockrecipe build' command.
type BuildCmd struct {
	Recipe       string            `arg:"" help:"Path to the recipe file." type:"existingfile"`
	Context      string            `short:"C" help:"Build context directory. Defaults to the recipe's directory." placeholder:"DIR"`
	Output       string            `short:"o" help:"Directory for the rendered Dockerfile. Defaults to the cache." placeholder:"DIR"`
	Platform     []string          `short:"p" help:"Target platform (repeatable)." placeholder:"OS/ARCH"`
	Tag          string            `short:"t" help:"Tag for the built image." placeholder:"REF"`
	QuietBuild   bool              `help:"Suppress build output and print the image ID."`
	Push         bool              `help:"Push the image after building. Requires --tag."`
	ExtraContext string            `help:"Directory providing the JProfiler build context." placeholder:"DIR" type:"existingdir"`
	BuildContext map[string]string `help:"Directory of a context named in the recipe's contexts list (repeatable)." placeholder:"NAME=DIR"`
}

// Executes the build command.
func (c *BuildCmd) Run(ctx context.Context) error {
	m, err := manifest.Load(c.Recipe)
	if err != nil {
		return err
	}

	root := c.Context
	if root == "" {
		root = filepath.Dir(c.Recipe)
	}

	contexts := make(map[string]string, len(c.BuildContext)+1)
	for name, dir := range c.BuildContext {
		contexts[name] = dir
	}
	if c.ExtraContext != "" {
		contexts[jprofiler.ContextName] = c.ExtraContext
	}

	result, err := build.Run(ctx, newClient(), build.Options{
		Recipe:    m,
		Root:      root,
		Output:    c.Output,
		Build:     true,
		Platforms: c.Platform,
		Tag:       c.Tag,
		Quiet:     c.QuietBuild,
		Push:      c.Push,
		Contexts:  contexts,
	})
	if err != nil {
		return err
	}

	if id := strings.TrimSpace(result.Output); c.QuietBuild && id != "" {
		fmt.Println(id)
	}
	return nil
}
