package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = `2 2
100 150 200 255
2 2
1 0
0 0
result.txt
`

// executeCommand runs the root command with args and returns its stdout.
// Flags keep their values between runs, so tests pass every flag they rely on.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name  string
		color string
		to    string
		want  string
	}{
		{"rgb to hsb", "rgb(255, 0, 0)", "hsb", "hsb(0, 100, 100)"},
		{"hsb to rgba", "hsb(120, 100, 100)", "rgba", "rgba(0, 255, 0, 255)"},
		{"hex to cmyk", "#ff0000", "cmyk", "cmyk(0, 100, 100, 0)"},
		{"rgb alias", "rgb(0, 0, 0)", "rgb", "rgba(0, 0, 0, 255)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "convert", tt.color, "--to", tt.to)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "integer=")
			assert.Contains(t, out, "luminance=")
		})
	}
}

func TestConvertCommandAllSpaces(t *testing.T) {
	out, err := executeCommand(t, "convert", "rgba(255, 0, 0, 255)", "--to=")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(colormodel.Spaces))
	assert.True(t, strings.HasPrefix(lines[0], "rgba("))
	assert.True(t, strings.HasPrefix(lines[1], "hsb("))
	assert.True(t, strings.HasPrefix(lines[2], "cmyk("))
	assert.True(t, strings.HasPrefix(lines[3], "xyz("))
}

func TestConvertCommandErrors(t *testing.T) {
	_, err := executeCommand(t, "convert", "lab(1, 2, 3)", "--to", "hsb")
	assert.Error(t, err)

	_, err = executeCommand(t, "convert", "rgb(1, 2, 3)", "--to", "lab")
	assert.Error(t, err)
}

func TestCombineCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "rgba(255, 0, 0, 255)", "rgba(0, 255, 0, 255)"}, "rgba(127, 127, 0, 255)"},
		{"or", []string{"or", "rgba(255, 0, 0, 255)", "rgba(0, 255, 0, 255)"}, "rgba(255, 255, 0, 255)"},
		{"and", []string{"and", "rgba(255, 0, 0, 255)", "rgba(0, 255, 0, 255)"}, "rgba(0, 0, 0, 255)"},
		{"xyz add", []string{"add", "xyz(10, 20, 30)", "xyz(30, 40, 50)"}, "xyz(20.00, 30.00, 40.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"combine"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCombineCommandXYZBitwise(t *testing.T) {
	_, err := executeCommand(t, "combine", "xor", "xyz(10, 20, 30)", "xyz(1, 2, 3)")
	require.Error(t, err)
	assert.ErrorIs(t, err, colormodel.ErrUnsupportedOperation)
}

func TestCombineCommandBadOp(t *testing.T) {
	_, err := executeCommand(t, "combine", "nand", "rgb(1, 2, 3)", "rgb(4, 5, 6)")
	assert.Error(t, err)
}

func writeJob(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	first := writeJob(t, dir, "first.dat", sampleJob)
	second := writeJob(t, dir, "second.dat", "1 3 0 0 0 255 1 3 1 1 1 dark.txt")

	out, err := executeCommand(t, "apply",
		"--output-dir", outDir,
		"--workers", "2",
		"--progress=false",
		"--allow-failures=false",
		"--display",
		"--step", "0",
		first, second,
	)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "result.txt"))
	assert.FileExists(t, filepath.Join(outDir, "dark.txt"))
	assert.Contains(t, out, "(2x2)")
	assert.Contains(t, out, "(1x3)")

	// Black stays black when darkened.
	data, err := os.ReadFile(filepath.Join(outDir, "dark.txt"))
	require.NoError(t, err)
	black := colormodel.NewRGBA(0, 0, 0, 255).Integer()
	assert.Equal(t, strings.Repeat(uintString(black)+" ", 3)+"\n", string(data))
}

func TestApplyCommandFailures(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	good := writeJob(t, dir, "good.dat", sampleJob)
	bad := writeJob(t, dir, "bad.dat", "2 2 oops")

	_, err := executeCommand(t, "apply",
		"--output-dir", outDir,
		"--workers", "1",
		"--progress=false",
		"--allow-failures=false",
		"--display=false",
		"--step", "0",
		good, bad,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 jobs failed")

	_, err = executeCommand(t, "apply",
		"--output-dir", outDir,
		"--workers", "1",
		"--progress=false",
		"--allow-failures",
		"--display=false",
		"--step", "0",
		good, bad,
	)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "result.txt"))
}

func TestNoiseCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "noise",
		"--output-dir", dir,
		"--rows", "3",
		"--cols", "4",
		"--fill", "rgba(100, 150, 200, 255)",
		"--threshold=-10",
		"--scale", "8",
		"--seed", "7",
		"--step", "20",
		"--output", "noise.txt",
		"--display",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "noise.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(data), out)

	// Every cell passes a threshold below the noise range.
	fill := uintString(colormodel.NewRGBA(100, 150, 200, 255).Integer())
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 4)
		for _, f := range fields {
			assert.NotEqual(t, fill, f)
		}
	}
}

func TestNoiseCommandZeroStep(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, "noise",
		"--output-dir", dir,
		"--rows", "2",
		"--cols", "2",
		"--fill", "rgba(100, 150, 200, 255)",
		"--threshold=-10",
		"--step", "0",
		"--output", "flat.txt",
		"--display=false",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "flat.txt"))
	require.NoError(t, err)
	fill := uintString(colormodel.NewRGBA(100, 150, 200, 255).Integer())
	assert.Equal(t, strings.Repeat(strings.Repeat(fill+" ", 2)+"\n", 2), string(data))

	_, err = executeCommand(t, "noise", "--output-dir", dir, "--step=-1", "--output", "neg.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestNoiseCommandErrors(t *testing.T) {
	dir := t.TempDir()
	base := []string{"noise", "--output-dir", dir, "--rows", "2", "--cols", "2", "--threshold=0.5", "--step", "20", "--display=false"}

	_, err := executeCommand(t, append(base, "--fill", "nope", "--output", "a.txt")...)
	assert.Error(t, err)

	_, err = executeCommand(t, append(base, "--fill", "#ffffff", "--output", "../a.txt")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output name")
}

func TestInteract(t *testing.T) {
	dir := t.TempDir()

	var out, prompts bytes.Buffer
	err := interact(strings.NewReader(sampleJob), &out, &prompts, dir, 0)
	require.NoError(t, err)

	assert.Contains(t, prompts.String(), "grid size")
	assert.Contains(t, prompts.String(), "file name")

	saved, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(saved))
}

func TestInteractSilent(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := interact(strings.NewReader(sampleJob), &out, nil, dir, 0)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Enter")
}

func TestInteractErrors(t *testing.T) {
	dir := t.TempDir()

	err := interact(strings.NewReader("2 2"), &bytes.Buffer{}, nil, dir, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job")

	// Job complete but no name follows.
	err = interact(strings.NewReader("1 1 0 0 0 255 0 0"), &bytes.Buffer{}, nil, dir, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read output name")
}

func TestPromptWriter(t *testing.T) {
	var out bytes.Buffer

	assert.Nil(t, promptWriter(strings.NewReader("1 1"), &out), "readers other than files never prompt")

	f, err := os.CreateTemp(t.TempDir(), "job")
	require.NoError(t, err)
	defer f.Close()
	assert.Nil(t, promptWriter(f, &out), "regular files are not terminals")
}

func TestInteractiveCommandUsesCommandInput(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetIn(strings.NewReader(sampleJob))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, err := executeCommand(t, "interactive", "--output-dir", dir, "--step", "20")
	require.NoError(t, err)
	assert.NotContains(t, out, "Enter", "piped input must not be prompted")

	saved, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	assert.Equal(t, out, string(saved))
}

func uintString(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
