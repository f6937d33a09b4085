package build

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"

	"github.com/cruciblehq/dockrecipe/internal/docker"
	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
	"github.com/cruciblehq/dockrecipe/internal/manifest"
	"github.com/cruciblehq/dockrecipe/internal/paths"
)

// Controls recipe rendering and building.
type Options struct {
	Recipe    *manifest.Recipe  // Recipe to render.
	Root      string            // Build context directory, root for resolving copy sources.
	Output    string            // Directory for the rendered Dockerfile. Empty uses the digest-addressed cache directory.
	Build     bool              // Whether to run docker buildx after rendering.
	Platforms []string          // Target platforms (e.g., ["linux/amd64"]). Empty uses the builder's default.
	Tag       string            // Image reference for the built image.
	Quiet     bool              // Suppress build output; the image ID is returned in the result.
	Push      bool              // Whether to push Tag after building.
	Contexts  map[string]string // Additional named build contexts, name to directory.
}

// Returned after a successful run.
type Result struct {
	Dockerfile string          // Path of the written Dockerfile.
	Digest     digest.Digest   // Content digest of the Dockerfile.
	Text       dockerfile.Text // Rendered recipe.
	Output     string          // Standard output of the build (the image ID when quiet).
}

// Renders a manifest into Dockerfile text.
func Render(m *manifest.Recipe) (dockerfile.Text, error) {
	text, _, err := render(m)
	return text, err
}

// Renders a recipe, writes the Dockerfile and optionally builds and pushes
// the image.
//
// Stages are rendered in declaration order. The Dockerfile is written to
// the output directory, or to a cache directory named after its digest, and
// built with docker buildx against the root build context. Named contexts
// the recipe copies from (such as the JProfiler context) must be provided.
func Run(ctx context.Context, client *docker.Client, opts Options) (*Result, error) {
	text, r, err := render(opts.Recipe)
	if err != nil {
		return nil, err
	}

	sum := dockerfile.Digest(text)

	output := opts.Output
	if output == "" {
		output = paths.Recipe(sum.Encoded())
	}

	slog.Info("writing recipe",
		"stages", len(opts.Recipe.Stages),
		"digest", sum.String(),
		"output", output,
	)

	path, err := dockerfile.Write(output, text)
	if err != nil {
		return nil, errors.Wrap(err, "write recipe")
	}

	result := &Result{Dockerfile: path, Digest: sum, Text: text}
	if !opts.Build {
		return result, nil
	}

	for name := range r.contexts {
		if _, ok := opts.Contexts[name]; !ok {
			return nil, errors.Wrapf(ErrMissingContext, "recipe copies from context %q", name)
		}
	}

	if opts.Push && opts.Tag == "" {
		return nil, errors.Wrap(ErrBuild, "push requires a tag")
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	slog.Info("building image", "context", root, "tag", opts.Tag, "platforms", opts.Platforms)

	out, err := client.Buildx().Build(ctx, root, docker.BuildOptions{
		File:      dockerfileFlag(path, root),
		Platforms: opts.Platforms,
		Tag:       opts.Tag,
		Quiet:     opts.Quiet,
		Contexts:  opts.Contexts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build image")
	}
	result.Output = out

	if opts.Push {
		slog.Info("pushing image", "tag", opts.Tag)
		if _, err := client.Push(ctx, opts.Tag); err != nil {
			return nil, errors.Wrap(err, "push image")
		}
	}

	return result, nil
}

// Returns the -f value for a Dockerfile, or empty when it is the default
// Dockerfile of the build context.
func dockerfileFlag(path, root string) string {
	if filepath.Clean(path) == filepath.Join(root, dockerfile.Name) {
		return ""
	}
	return path
}
