// Parses flags, configures logging and dispatches dockrecipe subcommands.
//
// The following global flags are accepted:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	    --docker    Docker program to invoke ($DOCKRECIPE_DOCKER).
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity before
// the subcommand runs.
package cli
