package internal

import (
	"strconv"
	"strings"
	"sync/atomic"
)

var (
	quietMode     atomic.Bool            // Indicates whether quiet mode is enabled.
	debugMode     atomic.Bool            // Indicates whether debug logging is enabled.
	verboseMode   atomic.Bool            // Indicates whether verbose logging is enabled.
	dockerProgram atomic.Pointer[string] // Docker program to invoke, empty for the default.
)

// Parses the linker flags into usable runtime variables.
//
// The rawQuiet, rawDebug, and rawVerbose variables should be set via ldflags
// during the build process. If not set, they default to "false". rawDocker
// may name the docker program for distributions that install it outside of
// PATH.
func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawDebug); err == nil {
		debugMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode.Store(v)
	}
	SetDockerProgram(rawDocker)
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) {
	quietMode.Store(enabled)
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Enables or disables debug mode.
func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Enables or disables verbose logging.
func SetVerbose(enabled bool) {
	verboseMode.Store(enabled)
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}

// Sets the docker program to invoke. Blank values restore the default.
func SetDockerProgram(program string) {
	program = strings.TrimSpace(program)
	dockerProgram.Store(&program)
}

// Returns the configured docker program, or an empty string when the
// default should be used.
func DockerProgram() string {
	if p := dockerProgram.Load(); p != nil {
		return *p
	}
	return ""
}
