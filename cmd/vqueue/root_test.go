package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VQUEUE_LOGGER_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMenuCommand(t *testing.T) {
	out, err := execute(t, "1\n42\n4\n6\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "Current version number is: 1")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "", "bench", "--ops", "100", "--parallel", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "worker 0: time taken for enqueueing 100 elements")
	assert.Contains(t, out, "worker 1: time taken for dequeueing 100 elements")
}

func TestBenchCommand_InvalidFlags(t *testing.T) {
	_, err := execute(t, "", "bench", "--ops", "0")

	assert.Error(t, err)
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := execute(t, "", "--config", "/nonexistent/vqueue.yaml", "menu")

	assert.Error(t, err)
}
