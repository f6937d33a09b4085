package docker

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Removes every image listed by "docker images -a -q".
//
// Images are removed one by one; the build cache is left untouched. Removal
// continues past failures (e.g. images used by a container) and the first
// failure is returned once all removals have finished.
func (c *Client) RemoveImages(ctx context.Context) error {
	out, err := c.Images(ctx, "-a", "-q")
	if err != nil {
		return err
	}

	return c.each(ctx, "removing images", ids(out), func(ctx context.Context, id string) error {
		_, err := c.Rmi(ctx, id)
		return err
	})
}

// Stops every running container listed by "docker ps -q".
//
// Containers are stopped but not removed.
func (c *Client) StopAll(ctx context.Context) error {
	out, err := c.Ps(ctx, "-q")
	if err != nil {
		return err
	}

	return c.each(ctx, "stopping containers", ids(out), func(ctx context.Context, id string) error {
		_, err := c.Stop(ctx, id)
		return err
	})
}

// Applies fn to every id with bounded concurrency.
//
// Failures are logged as they happen; the first one is returned after all
// invocations have completed.
func (c *Client) each(ctx context.Context, desc string, items []string, fn func(ctx context.Context, id string) error) error {
	if len(items) == 0 {
		slog.Debug("nothing to do", "operation", desc)
		return nil
	}

	w := c.progress
	if w == nil {
		w = io.Discard
	}
	bar := progressbar.NewOptions(len(items),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var g errgroup.Group
	g.SetLimit(c.parallelism)

	for _, id := range items {
		id := id
		g.Go(func() error {
			defer bar.Add(1)
			if err := fn(ctx, id); err != nil {
				slog.Warn(desc, "id", id, "error", err)
				return errors.Wrapf(err, "%s", id)
			}
			return nil
		})
	}

	err := g.Wait()
	bar.Finish()
	return err
}

// Splits command output into unique, non-empty identifiers, one per line.
func ids(out string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, line := range strings.Split(out, "\n") {
		id := strings.TrimSpace(line)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
