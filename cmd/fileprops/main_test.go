package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thirdcoast.systems/fileprops/pkg/rows"
)

var sample = []rows.Row{
	rows.Property("Name", "clip.mp4", 0).WithHint(rows.HintCopy),
	rows.Property("Size", "2.0 kB (2048 B)", 0),
	rows.Group("Media Info"),
	rows.SubGroup("Video", 0),
	rows.Property("Format", "AVC", 1),
	rows.SubGroup("Extra", 1),
	rows.Property("Codec", "x264", 2),
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, sample, outputOptions{}))

	assert.Equal(t, strings.Join([]string{
		"Name: clip.mp4",
		"Size: 2.0 kB (2048 B)",
		"",
		"Media Info",
		"==========",
		"[Video]",
		"  Format: AVC",
		"  [Extra]",
		"    Codec: x264",
		"",
	}, "\n"), buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, sample[:3], outputOptions{json: true}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Name", got[0]["label"])
	assert.Equal(t, "group", got[2]["kind"])
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, nil, outputOptions{json: true}))
	assert.JSONEq(t, "[]", buf.String())
}

func TestWriteJSONPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, sample, outputOptions{jsonPath: "$[?(@.kind == 'subgroup')].label"}))
	assert.JSONEq(t, `["Video","Extra"]`, buf.String())

	buf.Reset()
	require.NoError(t, writeRows(&buf, sample, outputOptions{jsonPath: "$[?(@.label == 'Missing')]"}))
	assert.JSONEq(t, "[]", buf.String())
}

func TestWriteJSONPath_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := writeRows(&buf, sample, outputOptions{jsonPath: "$[?("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jsonpath")
}

func TestShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 1500), 0o644))
	t.Setenv("XDG_MIME_PATH", filepath.Join(t.TempDir(), "no-xdg-mime"))

	out, err := run(t, "show", path, "--mime", "--date-format", "yyyy")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Name: notes.txt", lines[0])
	assert.Equal(t, "Size: 1.5 kB (1500 B)", lines[3])
	assert.Regexp(t, `^Modified: \d{4}$`, lines[6])
}

func TestShow_JSONPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	out, err := run(t, "show", path, "--jsonpath", "$[0].value")
	require.NoError(t, err)
	assert.JSONEq(t, `["notes.txt"]`, out)
}

func TestShow_MissingFile(t *testing.T) {
	_, err := run(t, "show", filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShow_RequiresPath(t *testing.T) {
	_, err := run(t, "show")
	require.Error(t, err)
}

func TestShow_FlagOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))
	t.Setenv("DATETIME_FORMAT", "HH:MM")

	out, err := run(t, "show", path, "--date-format", "yyyy", "--jsonpath", "$[6].value")
	require.NoError(t, err)
	assert.Regexp(t, `^\["\d{4}"\]$`, strings.Join(strings.Fields(out), ""))
}
