// Package logging configures the process-wide slog logger.
//
// Records are written by a tint handler. The level is held in a shared
// [slog.LevelVar], so it can be raised or lowered after flag parsing without
// replacing loggers that were derived earlier. Colour output is enabled only
// when the destination is a terminal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Level shared by every handler created by this package.
var level slog.LevelVar

// Options controlling the default logger.
type Options struct {
	Level   slog.Level // Minimum level of emitted records.
	Verbose bool       // Include timestamps and source locations.
}

// Creates a logger writing to w with the given options.
//
// The level of all loggers created by this package follows the most recent
// call to [New] or [SetLevel].
func New(w io.Writer, opts Options) *slog.Logger {
	level.Set(opts.Level)

	tintOpts := &tint.Options{
		Level:   &level,
		NoColor: !IsTerminal(w),
	}
	if opts.Verbose {
		tintOpts.AddSource = true
		tintOpts.TimeFormat = time.TimeOnly
	} else {
		tintOpts.ReplaceAttr = dropTime
	}

	return slog.New(tint.NewHandler(w, tintOpts))
}

// Changes the level of all loggers created by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Returns the current level.
func Level() slog.Level {
	return level.Level()
}

// Whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Removes the time attribute from top-level records.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
