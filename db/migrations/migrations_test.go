package migrations

import (
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsReachVersion(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	up, down := map[uint]bool{}, map[uint]bool{}
	var latest uint
	for _, e := range entries {
		name := e.Name()
		prefix, _, ok := strings.Cut(name, "_")
		require.True(t, ok, name)
		v, err := strconv.ParseUint(prefix, 10, 32)
		require.NoError(t, err, name)

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			up[uint(v)] = true
		case strings.HasSuffix(name, ".down.sql"):
			down[uint(v)] = true
		default:
			t.Fatalf("unexpected file %s", name)
		}
		latest = max(latest, uint(v))
	}

	assert.Equal(t, uint(Version), latest)
	for v := uint(1); v <= latest; v++ {
		assert.True(t, up[v], "missing up migration %d", v)
		assert.True(t, down[v], "missing down migration %d", v)
	}
}
