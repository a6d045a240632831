package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the command without a config file and with default env.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	isolate(t)

	out, err := execute(t, "t\na Joe Flu\nq\n")

	require.NoError(t, err)
	assert.Equal(t, "01-01-2025\nno stock\n", out)
}

func TestRoot_PositionalLanguage(t *testing.T) {
	isolate(t)

	out, err := execute(t, "a Joe Flu\n", "pt")

	require.NoError(t, err)
	assert.Equal(t, "esgotado\n", out)
}

func TestRoot_Flags(t *testing.T) {
	isolate(t)

	out, err := execute(t,
		"t\nc A1 31-12-2030 5 Flu\nc B1 31-12-2030 5 Flu\n",
		"--lang", "pt-PT", "--start-date", "05-05-2030", "--max-batches", "1",
	)

	require.NoError(t, err)
	assert.Equal(t, "05-05-2030\nA1\ndemasiadas vacinas\n", out)
}

func TestRoot_InvalidArguments(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "--start-date", "31-02-2030")
	assert.Error(t, err)

	_, err = execute(t, "", "--max-batches", "0")
	assert.Error(t, err)

	_, err = execute(t, "", "en", "extra")
	assert.Error(t, err)
}

func TestRoot_GettextLanguageEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("LANGUAGE", "pt_BR:pt")

	out, err := execute(t, "a Joe Flu\n")
	require.NoError(t, err)
	assert.Equal(t, "no stock\n", out)

	out, err = execute(t, "a Joe Flu\n", "--lang", "en")
	require.NoError(t, err)
	assert.Equal(t, "no stock\n", out)
}
