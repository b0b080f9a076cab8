package gen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppender_RoundTripLineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	a, err := NewAppender(path)
	require.NoError(t, err)

	for i := 0; i < 17; i++ {
		require.NoError(t, a.Append("line"))
	}
	require.NoError(t, a.Close())

	assert.Len(t, readLines(t, path), 17)
}

func TestAppender_ReopenAppendsNotTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")

	a, err := NewAppender(path)
	require.NoError(t, err)
	require.NoError(t, a.Append("first"))
	require.NoError(t, a.Close())

	b, err := NewAppender(path)
	require.NoError(t, err)
	require.NoError(t, b.Append("second"))
	require.NoError(t, b.Close())

	assert.Equal(t, []string{"first", "second"}, readLines(t, path))
}
