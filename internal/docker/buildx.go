package docker

import (
	"context"
	"slices"
	"strings"

	"github.com/containerd/platforms"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/pkg/errors"
)

// Platform most images are built for.
const PlatformAMD64 = "linux/amd64"

// Options of a buildx build.
type BuildOptions struct {
	File      string            // Path of the Dockerfile when it is not inside the build context.
	Platforms []string          // Target platforms (e.g., "linux/amd64"). Empty builds for the builder's default.
	Tag       string            // Image reference to tag the result with.
	Quiet     bool              // Suppress build output and print the image ID.
	Contexts  map[string]string // Additional named build contexts, name to directory.
}

// Issues "docker buildx" invocations.
type Buildx struct {
	client *Client
}

// Returns the buildx subcommand of the client.
func (c *Client) Buildx() *Buildx {
	return &Buildx{client: c}
}

// Runs "docker buildx build" on the build context at path.
//
// Platforms are normalized (e.g. "linux/arm64/v8" becomes "linux/arm64")
// and passed as a single comma-separated --platform flag. Additional
// contexts are passed in name order.
func (b *Buildx) Build(ctx context.Context, path string, opts BuildOptions) (string, error) {
	args := []string{"build"}

	if opts.File != "" {
		args = append(args, "-f", opts.File)
	}

	if len(opts.Platforms) > 0 {
		platform, err := normalizePlatforms(opts.Platforms)
		if err != nil {
			return "", err
		}
		args = append(args, "--platform", platform)
	}

	if opts.Tag != "" {
		if err := validateReference(opts.Tag); err != nil {
			return "", err
		}
		args = append(args, "-t", opts.Tag)
	}

	if opts.Quiet {
		args = append(args, "-q")
	}

	names := make([]string, 0, len(opts.Contexts))
	for name := range opts.Contexts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		args = append(args, "--build-context", name+"="+opts.Contexts[name])
	}

	args = append(args, path)
	return b.client.send(ctx, "buildx", args...)
}

// Parses, normalizes and joins a list of platform specifiers.
//
// Duplicates after normalization are dropped.
func normalizePlatforms(specs []string) (string, error) {
	parsed := make([]ocispec.Platform, 0, len(specs))
	for _, s := range specs {
		p, err := platforms.Parse(s)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidPlatform, "%q: %v", s, err)
		}
		parsed = append(parsed, p)
	}

	formatted := make([]string, 0, len(parsed))
	for _, p := range parsed {
		f := platforms.Format(p)
		if !slices.Contains(formatted, f) {
			formatted = append(formatted, f)
		}
	}
	return strings.Join(formatted, ","), nil
}
