package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+e.Name())
		require.NoError(t, err)

		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestMigrations_UniqueConstraints(t *testing.T) {
	var all strings.Builder
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	for _, e := range entries {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+e.Name())
		require.NoError(t, err)
		all.Write(body)
	}

	schema := all.String()
	assert.Contains(t, schema, "UNIQUE INDEX users_email_key ON users (email)")
	assert.Contains(t, schema, "UNIQUE INDEX posts_slug_key ON posts (slug)")
	assert.Contains(t, schema, "UNIQUE INDEX likes_user_post_key ON likes (user_id, post_id)")
}
