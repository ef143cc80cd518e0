package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"env.hcl"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "env.hcl", cfg.EnvPath)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Empty(t, cfg.Platforms)
}

func TestParseFlags(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-env", "envs/dev.yaml",
		"-catalog", "https://example.com/catalog.hcl",
		"-platforms", "x86_64-linux, aarch64-darwin,",
		"-output", "json",
		"-log-level", "debug",
		"-workers", "8",
		"-timeout", "30s",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "envs/dev.yaml", cfg.EnvPath)
	assert.Equal(t, "https://example.com/catalog.hcl", cfg.Catalog)
	assert.Equal(t, []string{"x86_64-linux", "aarch64-darwin"}, cfg.Platforms)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestParseShorthandPath(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-e", "env.hcl"}, out)
	require.NoError(t, err)
	assert.Equal(t, "env.hcl", cfg.EnvPath)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad output", args: []string{"-output", "xml", "env.hcl"}, wantErr: "invalid output"},
		{name: "bad log format", args: []string{"-log-format", "yaml", "env.hcl"}, wantErr: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "verbose", "env.hcl"}, wantErr: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
