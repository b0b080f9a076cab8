package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCommentPool_PlainTextStripsNoise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	content := "Great work 123!\n" +
		"  4.5 stars from me  \n" +
		"\n" +
		"12345.678\n" +
		"Plain line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pool := LoadCommentPool(path)

	assert.Equal(t, []string{"Great work !", "stars from me", "Plain line"}, pool)
}

func TestLoadCommentPool_MissingFileYieldsEmpty(t *testing.T) {
	pool := LoadCommentPool(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Empty(t, pool)
}

func TestLoadCommentPool_CorruptPDFYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	pool := LoadCommentPool(path)
	assert.Empty(t, pool)
}

func TestEffectivePool_FallsBackToDefault(t *testing.T) {
	pool := EffectivePool(nil)
	if len(pool) < 5 {
		t.Fatalf("default pool has %d entries, want >= 5", len(pool))
	}
}

func TestEffectivePool_KeepsExtracted(t *testing.T) {
	extracted := []string{"a", "b"}
	assert.Equal(t, extracted, EffectivePool(extracted))
}

func TestCleanLines(t *testing.T) {
	got := cleanLines("one 1\ntwo.2.\n\n...\nthree")
	assert.Equal(t, []string{"one", "two", "three"}, got)
}
