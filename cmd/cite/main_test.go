// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/citation-engine/pkg/types"
)

const recordsYAML = `
records:
  - documentType: book
    author: {firstName: George, lastName: Orwell}
    title: "1984"
    publisher: Secker & Warburg
    year: 1949
  - style: APA
    documentType: book
    author: {firstName: George, lastName: Orwell}
    title: Animal Farm
    year: 1945
  - style: MLA
    documentType: book
    author: {firstName: Nobody}
    title: Untitled
`

func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(recordsYAML), 0o644))
	return path
}

func TestLoadRecords(t *testing.T) {
	path := writeRecords(t)

	tests := []struct {
		name   string
		opts   loadOptions
		styles []types.Style
	}{
		{
			name:   "default style fills records without one",
			opts:   loadOptions{DefaultStyle: types.StyleMLA},
			styles: []types.Style{types.StyleMLA, types.StyleAPA},
		},
		{
			name:   "override replaces every style",
			opts:   loadOptions{DefaultStyle: types.StyleMLA, Override: types.StyleHarvard},
			styles: []types.Style{types.StyleHarvard, types.StyleHarvard},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			recs, invalid, err := loadRecords([]string{path}, tt.opts, &stderr)
			require.NoError(t, err)
			assert.Equal(t, 1, invalid)
			assert.Contains(t, stderr.String(), "record 3")
			assert.Contains(t, stderr.String(), "author and title")

			require.Len(t, recs, len(tt.styles))
			for i, want := range tt.styles {
				assert.Equal(t, want, recs[i].Style)
			}
		})
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, _, err := loadRecords([]string{filepath.Join(t.TempDir(), "none.yaml")}, loadOptions{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "reading record file")
}

func TestStyleOverride(t *testing.T) {
	assert.Equal(t, types.Style(""), styleOverride(""))
	assert.Equal(t, types.StyleChicago, styleOverride("chicago"))
	assert.Equal(t, types.Style("IEEE"), styleOverride("IEEE"))
}

func TestWriteCitations(t *testing.T) {
	recs := []types.Record{
		{Style: types.StyleAPA, Author: types.Person{FirstName: "George", LastName: "Orwell"}, Title: "1984", Year: "1949"},
		{Style: types.Style("IEEE"), Author: types.Person{LastName: "Orwell"}, Title: "1984"},
	}
	var out bytes.Buffer
	text := writeCitations(&out, recs)
	assert.Equal(t, "Orwell, G. (1949). 1984. \nCitation style not supported.\n", out.String())
	assert.Equal(t, out.String(), text)
}

func TestCopyText(t *testing.T) {
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })

	var copied string
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	var stderr bytes.Buffer
	copyText(&stderr, "a\nb\n")
	assert.Equal(t, "a\nb", copied)
	assert.Contains(t, stderr.String(), "Copied to clipboard.")

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	stderr.Reset()
	copyText(&stderr, "a\n")
	assert.Contains(t, stderr.String(), "could not copy citation to clipboard")
}

func TestFormatCommand(t *testing.T) {
	path := writeRecords(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"format", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "1 invalid record(s) skipped")
	assert.Equal(t,
		"Orwell, George. \"1984.\" Secker & Warburg, 1949. \nOrwell, G. (1945). Animal Farm. \n",
		stdout.String())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		enabled []zapcore.Level
		muted   []zapcore.Level
	}{
		{
			name:    "quiet by default",
			enabled: []zapcore.Level{zapcore.WarnLevel, zapcore.ErrorLevel},
			muted:   []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel},
		},
		{
			name:    "verbose enables debug",
			verbose: true,
			enabled: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newLogger(tt.verbose)
			require.NoError(t, err)
			for _, lvl := range tt.enabled {
				assert.True(t, l.Core().Enabled(lvl), "%s should be enabled", lvl)
			}
			for _, lvl := range tt.muted {
				assert.False(t, l.Core().Enabled(lvl), "%s should be muted", lvl)
			}
		})
	}
}
