package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/desktop"
)

func TestListCmd_PrintsApplications(t *testing.T) {
	cfg = testConfig(t)

	cmd := newListCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Firefox")
	assert.Contains(t, buf.String(), "/usr/lib/firefox")
}

func TestListCmd_JSONOutput(t *testing.T) {
	cfg = testConfig(t)

	cmd := newListCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--json"})

	require.NoError(t, cmd.Execute())

	var applications []desktop.Application
	require.NoError(t, json.Unmarshal(buf.Bytes(), &applications))
	require.Len(t, applications, 1)
	assert.Equal(t, "Firefox", applications[0].Name)
}
