package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_Paired(t *testing.T) {
	entries, err := fs.ReadDir(files, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

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

	assert.Equal(t, ups, downs)
	assert.Len(t, ups, 4)
}

func TestEmbeddedMigrations_ScoreUniqueness(t *testing.T) {
	data, err := fs.ReadFile(files, "000004_create_manual_scores_table.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "UNIQUE (translation_id, reviewer_id)")
}
