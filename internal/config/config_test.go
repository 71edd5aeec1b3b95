package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyenvanduocit/duocnv/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Width)
	assert.Equal(t, 0, cfg.App.Height)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, profile.DefaultURL, cfg.App.ProfileURL)
	assert.Empty(t, cfg.App.ProfileFile)
	assert.Zero(t, cfg.App.FetchTimeout)
	assert.False(t, cfg.App.NoBrowser)
	assert.Equal(t, "duocnv.log", cfg.Logging.FilePath)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	env := []string{
		"DUOCNV_WIDTH=100",
		"DUOCNV_HEIGHT=30",
		"DUOCNV_FOOTER=false",
		"DUOCNV_TRACE=1",
		"DUOCNV_LOG_FILE=/tmp/card.log",
		"DUOCNV_PROFILE_FILE=card.yaml",
		"DUOCNV_FETCH_TIMEOUT=2s",
		"DUOCNV_NO_BROWSER=true",
	}
	cfg, err := LoadArgs(nil, env)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.App.Width)
	assert.Equal(t, 30, cfg.App.Height)
	assert.False(t, cfg.App.ShowFooter)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/card.log", cfg.Logging.FilePath)
	assert.Equal(t, "card.yaml", cfg.App.ProfileFile)
	assert.Equal(t, 2*time.Second, cfg.App.FetchTimeout)
	assert.True(t, cfg.App.NoBrowser)
	assert.Equal(t, "2s", cfg.Flags["fetchTimeout"])
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-width", "60", "-profile-url", "https://example.com/me.json", "-footer=true"},
		[]string{"DUOCNV_WIDTH=100", "DUOCNV_FOOTER=false"},
	)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "https://example.com/me.json", cfg.App.ProfileURL)
	assert.Equal(t, []string{"-width", "60", "-profile-url", "https://example.com/me.json", "-footer=true"}, cfg.Args)
}

func TestLaterEnvironmentEntriesWin(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DUOCNV_WIDTH=10", "DUOCNV_WIDTH=20"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.App.Width)
}

func TestInvalidEnvironmentValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DUOCNV_WIDTH=wide", "DUOCNV_FETCH_TIMEOUT=soon", "DUOCNV_FOOTER=maybe"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Width)
	assert.Zero(t, cfg.App.FetchTimeout)
	assert.True(t, cfg.App.ShowFooter)
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-height", "-5"},
		{"-fetch-timeout", "abc"},
		{"-unknown"},
	} {
		_, err := LoadArgs(args, nil)
		assert.Error(t, err, "args %v", args)
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	negative := base
	negative.App.FetchTimeout = -time.Second
	assert.Error(t, Validate(negative))

	badURL := base
	badURL.App.ProfileURL = "ftp://example.com/me.json"
	assert.Error(t, Validate(badURL))

	relative := base
	relative.App.ProfileURL = "profile.json"
	assert.Error(t, Validate(relative))

	fileWins := badURL
	fileWins.App.ProfileFile = "card.yaml"
	assert.NoError(t, Validate(fileWins))
}

func TestReadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DUOCNV_WIDTH=72\n# comment\nDUOCNV_NO_BROWSER=true\n"), 0o644))

	entries, err := ReadDotenv(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"DUOCNV_WIDTH=72", "DUOCNV_NO_BROWSER=true"}, entries)

	cfg, err := LoadArgs(nil, append(entries, "DUOCNV_WIDTH=90"))
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.App.Width, "real environment wins over .env")
	assert.True(t, cfg.App.NoBrowser)
}

func TestReadDotenvMissingFile(t *testing.T) {
	entries, err := ReadDotenv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHelpFlagReturnsUsage(t *testing.T) {
	_, err := LoadArgs([]string{"-h"}, nil)
	require.Error(t, err)
	assert.True(t, IsHelp(err))

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Usage, "-profile-url")
	assert.Contains(t, usageErr.Usage, "-no-browser")
}

func TestUnknownFlagIsNotHelp(t *testing.T) {
	_, err := LoadArgs([]string{"-bogus"}, nil)
	require.Error(t, err)
	assert.False(t, IsHelp(err))
	assert.Contains(t, err.Error(), "bogus")
}
