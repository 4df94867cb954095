package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCommandPrintsLevels(t *testing.T) {
	out, err := execute(t, "decode", "5.5", "99", "0")
	require.NoError(t, err)
	assert.Equal(t, "5.5\tExploring Later + Emerging\n99\tConditional measure\n0\tNot Yet\n", out)
}

func TestDecodeCommandRejectsGarbage(t *testing.T) {
	_, err := execute(t, "decode", "high")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid score "high"`)
}

func TestDecodeCommandListsMeasures(t *testing.T) {
	out, err := execute(t, "decode", "--measures")
	require.NoError(t, err)
	assert.Contains(t, out, "ATL_REG_1\tApproaches to Learning - Self-Regulation\n")
	assert.Contains(t, out, "PD_HLTH_10\tPhysical Development - Health\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kmq-gateway "+version+" ("+commit+")\n", out)
}
