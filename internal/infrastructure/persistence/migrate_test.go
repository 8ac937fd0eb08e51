package persistence

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	data, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "-- +goose Up")
	assert.Contains(t, content, "-- +goose Down")
	for _, table := range []string{"airports", "aircrafts", "flights", "seats"} {
		assert.True(t, strings.Contains(content, "CREATE TABLE IF NOT EXISTS "+table+" "), "missing table %s", table)
	}
}
