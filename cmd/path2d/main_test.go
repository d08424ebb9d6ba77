package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_PathData(t *testing.T) {
	code, out, _ := runCLI("-d", "M0 0 L10 10 Z")
	require.Equal(t, 0, code)
	assert.Equal(t, "d: 3 segments\n  segments: M0 0 L10 10 Z\n  last point: 0 0\n", out)
}

func TestRun_NoLastPoint(t *testing.T) {
	code, out, _ := runCLI("-d", "")
	// An empty -d means "no path data", which needs a scene file instead.
	assert.Equal(t, 1, code)
	assert.Empty(t, out)

	code, out, _ = runCLI("-d", "L1 1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "d: 0 segments")
	assert.Contains(t, out, "last point: none")
}

func TestRun_GeomFormat(t *testing.T) {
	code, out, _ := runCLI("-format", "geom", "-d", "M0 0 L10 10 Z")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "  moveto 0,0\n  lineto 10,10\n  close\n")
}

func TestRun_Scene(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(name, []byte(`
[[path]]
name = "corner"
d = "M0 0"
ops = [ { op = "arcTo", args = [10.0, 0.0, 10.0, 10.0, 5.0] } ]
`), 0o600))

	code, out, _ := runCLI(name)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "corner: 2 segments")
	assert.Contains(t, out, "last point: 10 5")
}

func TestRun_VerboseLogsTruncation(t *testing.T) {
	code, _, errOut := runCLI("-v", "-d", "M0 0 L1")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "truncated")

	code, _, errOut = runCLI("-d", "M0 0 L1")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-x"}, 2},
		{"unknown format", []string{"-format", "svg", "-d", "M0 0"}, 2},
		{"no input", nil, 1},
		{"both inputs", []string{"-d", "M0 0", "scene.toml"}, 1},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.toml")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(tt.args...)
			assert.Equal(t, tt.want, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestRun_SceneError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(name, []byte(`
[[path]]
name = "p"
ops = [ { op = "arc", args = [0.0, 0.0, -1.0, 0.0, 1.0] } ]
`), 0o600))

	code, _, errOut := runCLI(name)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "index size")
}
