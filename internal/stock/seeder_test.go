package stock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photokeep/photokeep/internal/database"
	"github.com/photokeep/photokeep/internal/entities"
)

func setupStore(t *testing.T) (*database.Store, string) {
	dbPath := filepath.Join(t.TempDir(), "photos.db")
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return database.OpenStore(db), dbPath
}

func stockAlbum(t *testing.T, store *database.Store) *entities.Album {
	t.Helper()
	user, ok := store.GetUser(entities.StockUsername)
	require.True(t, ok)
	album := user.FindAlbumByName(entities.StockAlbumName)
	require.NotNil(t, album)
	return album
}

func TestSeeder_SynthesizesPlaceholders(t *testing.T) {
	store, _ := setupStore(t)
	dir := filepath.Join(t.TempDir(), "stock")

	added, err := NewSeeder(store, dir, 5).Seed()
	require.NoError(t, err)
	assert.Equal(t, 5, added)

	for _, name := range []string{"beach.jpg", "mountains.jpg", "city.jpg", "forest.jpg", "sunset.jpg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	album := stockAlbum(t, store)
	assert.Equal(t, 5, album.PhotoCount())
	for _, photo := range album.Photos() {
		name := filepath.Base(photo.FilePath())
		assert.Equal(t, "Stock photo: "+name, photo.Caption())
		assert.True(t, photo.HasTag("type", "stock"))
		assert.True(t, photo.HasTag("filename", name))
	}
}

func TestSeeder_SecondRunAddsNothing(t *testing.T) {
	store, _ := setupStore(t)
	dir := filepath.Join(t.TempDir(), "stock")
	seeder := NewSeeder(store, dir, 5)

	_, err := seeder.Seed()
	require.NoError(t, err)

	added, err := seeder.Seed()
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, 5, stockAlbum(t, store).PhotoCount())
}

func TestSeeder_UsesExistingFilesAboveMinimum(t *testing.T) {
	store, _ := setupStore(t)
	dir := t.TempDir()
	names := []string{"a.JPG", "b.png", "c.gif", "d.bmp", "e.jpeg", "notes.txt"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	added, err := NewSeeder(store, dir, 5).Seed()
	require.NoError(t, err)

	// Five image files already present: no placeholders, the text file
	// is ignored.
	assert.Equal(t, 5, added)
	_, err = os.Stat(filepath.Join(dir, "beach.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestSeeder_RecreatesMissingStockUserAndAlbum(t *testing.T) {
	store, _ := setupStore(t)
	dir := filepath.Join(t.TempDir(), "stock")

	// Simulate a prior load that produced neither user nor album.
	require.True(t, store.RemoveUser(entities.StockUsername))

	_, err := NewSeeder(store, dir, 5).Seed()
	require.NoError(t, err)

	assert.Equal(t, 5, stockAlbum(t, store).PhotoCount())
}

func TestSeeder_SeedingSurvivesReload(t *testing.T) {
	store, dbPath := setupStore(t)
	dir := filepath.Join(t.TempDir(), "stock")

	_, err := NewSeeder(store, dir, 5).Seed()
	require.NoError(t, err)

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 5, stockAlbum(t, database.OpenStore(db)).PhotoCount())
}
