package cli

import (
	"context"
	"log/slog"
)

// Represents the 'dockrecipe clean' command.
//
// Without flags both containers and images are cleaned. Containers are
// stopped first so their images can be removed.
type CleanCmd struct {
	Containers bool `help:"Stop running containers."`
	Images     bool `help:"Remove all images. The build cache is kept."`
}

// Executes the clean command.
func (c *CleanCmd) Run(ctx context.Context) error {
	all := !c.Containers && !c.Images
	client := newClient()

	if all || c.Containers {
		if err := client.StopAll(ctx); err != nil {
			return err
		}
		slog.Info("containers stopped")
	}

	if all || c.Images {
		if err := client.RemoveImages(ctx); err != nil {
			return err
		}
		slog.Info("images removed")
	}

	return nil
}
