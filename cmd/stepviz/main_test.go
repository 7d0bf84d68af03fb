package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "array:")
	assert.Contains(t, out, "hash:")
	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "kmp")
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "bubble")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bubble (array)"))
	assert.Contains(t, out, "   1 | ")
}

func TestDescribe_Unknown(t *testing.T) {
	_, err := execute(t, "describe", "bogosort")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
}

func TestRun_Table(t *testing.T) {
	out, err := execute(t, "run", "bubble", "--values", "3,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "MESSAGE")
	assert.Contains(t, out, "metrics:")
	assert.Contains(t, out, "swaps:")
}

func TestRun_LastWithFlags(t *testing.T) {
	out, err := execute(t, "run", "binary-search", "--values", "1,3,5,7", "--target", "5", "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 5 at index 2.")
	assert.NotContains(t, out, "MESSAGE")
}

func TestRun_InputFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bits and width", []string{"count-bits", "--bits", "7", "--width", "4", "--last"}, "7 has 3 set bits."},
		{"start", []string{"bfs", "--start", "2"}, "Enqueue start node 2."},
		{"tail", []string{"detect-cycle", "--values", "1,2,3", "--tail=-1", "--last"}, "Fast reached the end: the list has no cycle."},
		{"negative size", []string{"hash-search", "--size=-3", "--last"}, "Table size must be positive, got -3."},
		{"oversized array", []string{"bubble", "--values", strings.Repeat("1,", 64) + "1", "--last"}, "Arrays are limited to 64 elements, got 65."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"run"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRun_Chart(t *testing.T) {
	out, err := execute(t, "run", "bubble", "--values", "4,2,3,1", "--last", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "bubble (final array)")

	_, err = execute(t, "run", "kmp", "--chart")
	assert.Error(t, err)
}

func TestRun_Preset(t *testing.T) {
	_, err := execute(t, "run", "bubble", "--preset", "reversed", "--last")
	require.NoError(t, err)

	_, err = execute(t, "run", "bubble", "--preset", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: linear-search\ninput:\n  values: [4, 8, 15]\n  target: 15\n"), 0644))

	out, err := execute(t, "run", "--config", path, "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "linear-search")
	assert.Contains(t, out, "Found 15 at index 2.")
}

func TestExportTracesShow(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "export", "bubble", "--values", "2,1", "--data", dir)
	require.NoError(t, err)
	require.Contains(t, out, "trace id: bubble_")
	id := strings.TrimSpace(strings.TrimPrefix(out, "trace id: "))

	out, err = execute(t, "traces", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "array")

	out, err = execute(t, "show", id, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: bubble (array)")
	assert.Contains(t, out, "MESSAGE")
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	_, err := execute(t, "export", "kmp", "-o", path)
	require.NoError(t, err)

	out, err := execute(t, "show", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: kmp (string)")
}

func TestShow_Missing(t *testing.T) {
	_, err := execute(t, "show", "nothing_here", "--data", t.TempDir())
	assert.Error(t, err)

	_, err = execute(t, "show")
	assert.Error(t, err)
}

func TestTraces_Empty(t *testing.T) {
	out, err := execute(t, "traces", "--data", filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Contains(t, out, "no traces")
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets", "bubble")
	require.NoError(t, err)
	assert.Contains(t, out, "presets for bubble:")
	assert.Contains(t, out, "reversed")

	out, err = execute(t, "presets", "bogosort")
	require.NoError(t, err)
	assert.Contains(t, out, "no presets")
}

func TestExport_SVG(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "final.svg")
	_, err := execute(t, "export", "bubble", "--data", dir, "--svg", svg)
	require.NoError(t, err)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	_, err = execute(t, "export", "kmp", "--data", dir, "--svg", filepath.Join(dir, "kmp.svg"))
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tour\nruns:\n  - algorithm: bubble\n  - name: search\n    algorithm: linear-search\n"), 0644))

	out, err := execute(t, "batch", path, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario: tour")
	assert.Contains(t, out, "search")

	out, err = execute(t, "traces", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "bubble_")
	assert.Contains(t, out, "linear-search_")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "bubble", "--min", "4", "--max", "8", "--points", "2", "--seed", "3", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPARISONS")
	assert.Contains(t, out, "bubble comparisons, n = 4..8")

	_, err = execute(t, "sweep", "kmp")
	assert.Error(t, err)
}
