package cli

import (
	"context"
	"log/slog"
)

// Represents the 'dockrecipe tag' command.
type TagCmd struct {
	Source string `arg:"" help:"Existing image."`
	Target string `arg:"" help:"New reference for the image."`
}

// Executes the tag command.
func (c *TagCmd) Run(ctx context.Context) error {
	if _, err := newClient().Tag(ctx, c.Source, c.Target); err != nil {
		return err
	}
	slog.Info("image tagged", "source", c.Source, "target", c.Target)
	return nil
}

// Represents the 'dockrecipe push' command.
type PushCmd struct {
	Image string `arg:"" help:"Image to push."`
}

// Executes the push command.
func (c *PushCmd) Run(ctx context.Context) error {
	if _, err := newClient().Push(ctx, c.Image); err != nil {
		return err
	}
	slog.Info("image pushed", "image", c.Image)
	return nil
}

// Represents the 'dockrecipe save' command.
type SaveCmd struct {
	Image  string `arg:"" help:"Image to save."`
	Output string `short:"o" help:"Archive path." default:"image.tar" type:"path"`
}

// Executes the save command.
func (c *SaveCmd) Run(ctx context.Context) error {
	if _, err := newClient().Save(ctx, c.Image, c.Output); err != nil {
		return err
	}
	slog.Info("image saved", "image", c.Image, "path", c.Output)
	return nil
}
