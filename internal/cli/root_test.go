package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestShowCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "show", `(\lx : t . x) y`)
	require.NoError(t, err)
	assert.Equal(t, "y\n", out)
}

func TestShowCommandGlyphInput(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "show", "λx : * . x")
	require.NoError(t, err)
	assert.Equal(t, "λx : * . x\n", out)
}

func TestTypeCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "type", "*")
	require.NoError(t, err)
	assert.Equal(t, "□\n", out)
}

func TestTypeCommandFailure(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "type", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
}

func TestTypeCommandParseFailure(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "type", `\lx * . x`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fluxo")
	assert.Contains(t, out, Version)
}

func TestInitCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "fluxo.yaml")

	if _, err := os.Stat("fluxo.yaml"); err != nil {
		t.Fatalf("init did not write fluxo.yaml: %v", err)
	}

	_, err = execute(t, "init")
	require.Error(t, err)
}

// chdir mirrors t.Chdir, which requires Go 1.24; this toolchain is older.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
