package docker

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Records invocations and answers them from canned output.
type fakeShell struct {
	mu      sync.Mutex
	calls   [][]string
	outputs map[string]string // Keyed by the space-joined argument list.
	fail    map[string]bool   // Argument lists that fail.
}

func newFakeShell() *fakeShell {
	return &fakeShell{
		outputs: make(map[string]string),
		fail:    make(map[string]bool),
	}
}

func (s *fakeShell) Send(ctx context.Context, args ...string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, args)
	key := strings.Join(args, " ")
	if s.fail[key] {
		return "", errors.Wrap(ErrCommandFailed, key)
	}
	return s.outputs[key], nil
}

// Returns the recorded invocations as space-joined strings.
func (s *fakeShell) lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, len(s.calls))
	for i, call := range s.calls {
		lines[i] = strings.Join(call, " ")
	}
	return lines
}
