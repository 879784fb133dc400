package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/govprop/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"add waste items":          "add_waste_items",
		"Add-Loss-Circumstances":   "add_loss_circumstances",
		"  index  stock__entries ": "index_stock_entries",
		"RIS v2!":                  "ris_v2",
		"!!!":                      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestCreate_NumbersAfterLatest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init_schema.up.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init_schema.down.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0o644))

	files, err := Create(dir, "Add transfer slips")
	require.NoError(t, err)
	assert.Equal(t, 2, files.Version)
	assert.Equal(t, filepath.Join(dir, "000002_add_transfer_slips.up.sql"), files.UpPath)
	assert.FileExists(t, files.DownPath)

	up, err := os.ReadFile(files.UpPath)
	require.NoError(t, err)
	assert.Equal(t, "-- Add transfer slips\n", string(up))

	latest, err := LatestVersion(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, latest)
}

func TestCreate_EmptyDirAndBadName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	latest, err := LatestVersion(dir)
	require.NoError(t, err)
	assert.Zero(t, latest)

	_, err = Create(t.TempDir(), "***")
	assert.Error(t, err)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	for _, up := range ups {
		down := up[:len(up)-len(".up.sql")] + ".down.sql"
		_, err := fs.Stat(migrations.FS, down)
		assert.NoError(t, err, "missing %s", down)
		assert.Regexp(t, migrationFile, up)
	}
}
