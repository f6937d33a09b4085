package docker

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveImages(t *testing.T) {
	shell := newFakeShell()
	shell.outputs["docker images -a -q"] = "aaa\nbbb\n\naaa\n ccc \n"

	var progress bytes.Buffer
	err := New(shell, WithProgress(&progress), WithParallelism(2)).RemoveImages(context.Background())
	require.NoError(t, err)

	lines := shell.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "docker images -a -q", lines[0])
	assert.ElementsMatch(t, []string{"docker rmi aaa", "docker rmi bbb", "docker rmi ccc"}, lines[1:])
}

func TestRemoveImagesContinuesAfterFailure(t *testing.T) {
	shell := newFakeShell()
	shell.outputs["docker images -a -q"] = "aaa\nbbb\nccc\n"
	shell.fail["docker rmi aaa"] = true

	err := New(shell, WithParallelism(1)).RemoveImages(context.Background())
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Len(t, shell.lines(), 4)
}

func TestStopAll(t *testing.T) {
	shell := newFakeShell()
	shell.outputs["docker ps -q"] = "c1\nc2\n"

	require.NoError(t, New(shell).StopAll(context.Background()))

	lines := shell.lines()
	assert.Equal(t, "docker ps -q", lines[0])
	assert.ElementsMatch(t, []string{"docker stop c1", "docker stop c2"}, lines[1:])
}

func TestStopAllNothingRunning(t *testing.T) {
	shell := newFakeShell()
	require.NoError(t, New(shell).StopAll(context.Background()))
	assert.Equal(t, []string{"docker ps -q"}, shell.lines())
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ids("a\n\n b\na\n"))
	assert.Empty(t, ids(""))
}
