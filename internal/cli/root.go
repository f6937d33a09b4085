package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cruciblehq/dockrecipe/internal"
	"github.com/cruciblehq/dockrecipe/internal/docker"
	"github.com/cruciblehq/dockrecipe/internal/logging"
)

// Represents the root command for dockrecipe.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Docker  string     `help:"Docker program to invoke." env:"DOCKRECIPE_DOCKER" placeholder:"PATH"`
	Render  RenderCmd  `cmd:"" help:"Render a recipe to a Dockerfile."`
	Build   BuildCmd   `cmd:"" help:"Render a recipe and build it with docker buildx."`
	Tag     TagCmd     `cmd:"" help:"Tag an image."`
	Push    PushCmd    `cmd:"" help:"Push an image."`
	Save    SaveCmd    `cmd:"" help:"Save an image to a tar archive."`
	Clean   CleanCmd   `cmd:"" help:"Stop containers and remove images."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Generates Dockerfiles from recipes and drives docker to build them."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configure()

	return kongCtx.Run()
}

// Applies CLI flags to the global configuration and logger.
func configure() {
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())
	if RootCmd.Docker != "" {
		internal.SetDockerProgram(RootCmd.Docker)
	}

	// Configure logger
	level := slog.LevelInfo
	if internal.IsDebug() {
		level = slog.LevelDebug
	} else if internal.IsQuiet() {
		level = slog.LevelWarn
	}

	// Handlers created in main follow the shared level; only the verbose
	// layout needs a new one.
	logging.SetLevel(level)
	if RootCmd.Verbose {
		slog.SetDefault(logging.New(os.Stderr, logging.Options{
			Level:   level,
			Verbose: true,
		}).WithGroup(internal.Name))
	}

	slog.Debug("logging configured", "level", logging.Level(), "verbose", internal.IsVerbose())
}

// Creates a docker client for the configured program.
//
// Progress bars are drawn on stderr when it is a terminal and quiet mode is
// off.
func newClient() *docker.Client {
	opts := []docker.Option{docker.WithProgram(internal.DockerProgram())}
	if !internal.IsQuiet() && logging.IsTerminal(os.Stderr) {
		opts = append(opts, docker.WithProgress(os.Stderr))
	}
	return docker.New(&docker.ExecShell{Stderr: !internal.IsQuiet()}, opts...)
}
