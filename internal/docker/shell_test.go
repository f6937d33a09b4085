package docker

import (
	"context"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		want      []string
	}{
		{
			name:      "override existing key",
			base:      []string{"A=1", "B=2"},
			overrides: []string{"A=override"},
			want:      []string{"A=override", "B=2"},
		},
		{
			name:      "add new key",
			base:      []string{"A=1"},
			overrides: []string{"B=2"},
			want:      []string{"A=1", "B=2"},
		},
		{
			name:      "empty base",
			base:      nil,
			overrides: []string{"A=1"},
			want:      []string{"A=1"},
		},
		{
			name:      "both empty",
			base:      nil,
			overrides: nil,
			want:      []string{},
		},
		{
			name:      "value with equals sign",
			base:      []string{"CMD=foo=bar"},
			overrides: nil,
			want:      []string{"CMD=foo=bar"},
		},
		{
			name:      "malformed entries skipped",
			base:      []string{"NOEQUALS", "A=1"},
			overrides: []string{"ALSO_BAD", "B=2"},
			want:      []string{"A=1", "B=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeEnv(tt.base, tt.overrides)
			sort.Strings(got)
			sort.Strings(tt.want)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	s := &ExecShell{Env: []string{"DOCKRECIPE_TEST=ok"}}

	out, err := s.Send(context.Background(), "sh", "-c", "printf %s \"$DOCKRECIPE_TEST\"")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = s.Send(context.Background(), "sh", "-c", "echo nope >&2; exit 3")
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, err.Error(), "nope")
}

func TestExecShellNoProgram(t *testing.T) {
	_, err := (&ExecShell{}).Send(context.Background())
	assert.ErrorIs(t, err, ErrCommandFailed)
}
