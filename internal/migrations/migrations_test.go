package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiles_UpAndDownPaired(t *testing.T) {
	entries, err := fs.ReadDir(Files, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestFiles_InitCreatesReadTables(t *testing.T) {
	body, err := fs.ReadFile(Files, "000001_init.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"movies", "genres", "people", "watch_histories", "watch_logs", "logs"} {
		require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
