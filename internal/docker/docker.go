package docker

import (
	"context"
	"io"

	"github.com/distribution/reference"
	"github.com/pkg/errors"
)

const (

	// Program invoked when no other path is configured.
	DefaultProgram = "docker"

	// Number of concurrent invocations used by bulk operations.
	defaultParallelism = 4
)

// Issues docker CLI invocations through a [Shell].
//
// Every method prepends the configured program and its subcommand to the
// given arguments and returns the program's standard output.
type Client struct {
	shell       Shell     // Shell used to run the docker program.
	program     string    // Path or name of the docker program.
	progress    io.Writer // Destination for progress bars of bulk operations, nil to disable.
	parallelism int       // Number of concurrent invocations in bulk operations.
}

// Configures a [Client].
type Option func(*Client)

// Sets the docker program to invoke.
func WithProgram(program string) Option {
	return func(c *Client) {
		if program != "" {
			c.program = program
		}
	}
}

// Renders progress bars for bulk operations to w.
func WithProgress(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// Sets the number of concurrent invocations used by bulk operations.
func WithParallelism(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// Creates a [Client] that runs docker through shell.
func New(shell Shell, opts ...Option) *Client {
	c := &Client{
		shell:       shell,
		program:     DefaultProgram,
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Runs "docker build".
func (c *Client) Build(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "build", args...)
}

// Runs "docker tag".
//
// The target must be a valid image reference.
func (c *Client) Tag(ctx context.Context, source, target string) (string, error) {
	if err := validateReference(target); err != nil {
		return "", err
	}
	return c.send(ctx, "tag", source, target)
}

// Runs "docker push".
func (c *Client) Push(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "push", args...)
}

// Runs "docker ps".
func (c *Client) Ps(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "ps", args...)
}

// Runs "docker stop".
func (c *Client) Stop(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "stop", args...)
}

// Runs "docker run".
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "run", args...)
}

// Runs "docker system".
func (c *Client) System(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "system", args...)
}

// Runs "docker images".
func (c *Client) Images(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "images", args...)
}

// Runs "docker rmi".
func (c *Client) Rmi(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "rmi", args...)
}

// Runs "docker rm".
func (c *Client) Rm(ctx context.Context, args ...string) (string, error) {
	return c.send(ctx, "rm", args...)
}

// Runs "docker save" for a single image.
//
// When output is empty the archive is written to standard output and
// returned.
func (c *Client) Save(ctx context.Context, image, output string) (string, error) {
	var args []string
	if output != "" {
		args = append(args, "-o", output)
	}
	return c.send(ctx, "save", append(args, image)...)
}

// Runs the docker program with a subcommand and its arguments.
func (c *Client) send(ctx context.Context, subcommand string, args ...string) (string, error) {
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, c.program, subcommand)
	argv = append(argv, args...)
	return c.shell.Send(ctx, argv...)
}

// Checks that ref is a valid, normalizable image reference.
func validateReference(ref string) error {
	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return errors.Wrapf(ErrInvalidReference, "%q: %v", ref, err)
	}
	return nil
}
