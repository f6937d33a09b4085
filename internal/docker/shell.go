package docker

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runs a program with arguments and returns its standard output.
//
// The first argument is the program. Implementations return an error
// wrapping [ErrCommandFailed] when the program cannot be started or exits
// with a non-zero code.
type Shell interface {
	Send(ctx context.Context, args ...string) (string, error)
}

// A [Shell] that runs processes on the host.
type ExecShell struct {
	Env    []string // "KEY=value" overrides merged on top of the current environment.
	Dir    string   // Working directory, empty for the current one.
	Stderr bool     // Whether to stream stderr to the terminal instead of capturing it.
}

// Runs args[0] with the remaining arguments and captures its output.
//
// Standard output is returned with surrounding whitespace intact. Standard
// error is included in the returned error when the process fails.
func (s *ExecShell) Send(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.Wrap(ErrCommandFailed, "no program")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = s.Dir
	if len(s.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), s.Env)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if s.Stderr {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	slog.Debug("exec", "args", args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), errors.Wrapf(ErrCommandFailed, "%s: exit code %d: %s",
				strings.Join(args, " "), exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return stdout.String(), errors.Wrapf(ErrCommandFailed, "%s: %v", args[0], err)
	}

	return stdout.String(), nil
}

// Merges override env vars on top of a base env slice.
//
// The order of the base entries is preserved; new keys are appended in the
// order they appear in overrides.
func mergeEnv(base, overrides []string) []string {
	index := make(map[string]int, len(base)+len(overrides))
	result := make([]string, 0, len(base)+len(overrides))

	add := func(entry string) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		if i, seen := index[k]; seen {
			result[i] = entry
			return
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	for _, entry := range base {
		add(entry)
	}
	for _, entry := range overrides {
		add(entry)
	}
	return result
}
