package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestDefaultConfig_OriginalConstants(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5123, cfg.ResponseBytes)
	assert.Equal(t, "/index.html", cfg.URLPath)
	assert.Equal(t, Probabilities{Like: 0.55, Bookmark: 0.40, Share: 0.35, Comment: 0.50}, cfg.Probabilities)
	assert.Equal(t, 5, cfg.MinWaitS)
	assert.Equal(t, 300, cfg.MaxWaitS)
	assert.Len(t, cfg.UserAgents, 4)
	assert.Contains(t, cfg.Referrers, "-")
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeProfile(t, "title: Night Market\nmin_wait_s: 1\nmax_wait_s: 2\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Night Market", cfg.Title)
	assert.Equal(t, 1, cfg.MinWaitS)
	assert.Equal(t, 2, cfg.MaxWaitS)
	// Untouched fields keep their defaults
	assert.Equal(t, 5123, cfg.ResponseBytes)
	assert.Equal(t, 0.55, cfg.Probabilities.Like)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeProfile(t, "title: x\ntitel_typo: y\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadProbability(t *testing.T) {
	path := writeProfile(t, "probabilities:\n  like: 1.5\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "probabilities.like")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_WaitBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWaitS = 10
	cfg.MaxWaitS = 9
	assert.Error(t, cfg.Validate())

	cfg.MinWaitS = 0
	cfg.MaxWaitS = 10
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptySets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserAgents = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Referrers = nil
	assert.Error(t, cfg.Validate())
}
