package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointJSON = `{
	"title": "Subject-verb agreement",
	"title_en": "Agreement",
	"type": "improvement",
	"originalSentence": "He go to school.",
	"improvedSentences": ["He goes to school."],
	"furtherExamples": [],
	"reasonEn": "Third person singular.",
	"reasonZh": "第三人稱單數。"
}`

func contentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	files := map[string]string{
		"manifest.json": `[{"id":"p1","title":"Agreement"},{"id":"gone","title":"Missing"}]`,
		"p1.json":       pointJSON,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(data, name), []byte(body), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yml")
}

func TestShowFormats(t *testing.T) {
	dir := contentDir(t)

	tests := []struct {
		format string
		want   []string
	}{
		{"markdown", []string{"## Subject-verb agreement", "> He go to school."}},
		{"text", []string{"Subject-verb agreement", "  • He goes to school."}},
		{"html", []string{"<!DOCTYPE html>", `href="#p1"`, "He goes to school."}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := run(t, "show", "#p1", "--format", tt.format, "--source", dir, "--config", noConfig(t))
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestShowUnknownIDPrintsIntro(t *testing.T) {
	out, err := run(t, "show", "nope", "--format", "text", "--source", contentDir(t), "--config", noConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Please select an item")
}

func TestShowMissingPointFails(t *testing.T) {
	out, err := run(t, "show", "gone", "--format", "text", "--source", contentDir(t), "--config", noConfig(t))
	assert.Error(t, err)
	assert.Contains(t, out, "gone.json")
}

func TestShowRejectsFormat(t *testing.T) {
	_, err := run(t, "show", "p1", "--format", "pdf", "--source", contentDir(t), "--config", noConfig(t))
	assert.Error(t, err)
}

func TestCheckReportsMissingPoint(t *testing.T) {
	t.Setenv("CI", "1")
	out, err := run(t, "check", "--match", "", "--source", contentDir(t), "--config", noConfig(t))
	assert.Error(t, err)
	assert.Contains(t, out, "error gone:")
	assert.Contains(t, out, "2 manifest entries, 2 points checked, 1 errors, 0 warnings")
}

func TestCheckMatch(t *testing.T) {
	t.Setenv("CI", "1")
	out, err := run(t, "check", "--match", "p*", "--source", contentDir(t), "--config", noConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "1 points checked, 0 errors")
}

func TestSourceFromConfigFile(t *testing.T) {
	dir := contentDir(t)
	cfg := filepath.Join(t.TempDir(), "writeguide.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("source: "+dir+"\n"), 0o644))

	out, err := run(t, "show", "p1", "--format", "markdown", "--source", "", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Subject-verb agreement")
}

func TestServeHelpDescribesStaticHost(t *testing.T) {
	assert.Contains(t, serveCmd.Long, "static file host")
	assert.Contains(t, serveCmd.Long, "no browser logic")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "writeguide dev\n", out)
}
