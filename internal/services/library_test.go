package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photokeep/photokeep/internal/database"
	"github.com/photokeep/photokeep/internal/database/audit"
	"github.com/photokeep/photokeep/internal/entities"
)

func setupLibrary(t *testing.T) (*Library, string) {
	dbPath := filepath.Join(t.TempDir(), "photos.db")

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	store := database.OpenStore(db)
	return NewLibrary(store, audit.NewRepository(db.DB)), dbPath
}

func reopenLibrary(t *testing.T, dbPath string) *Library {
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return NewLibrary(database.OpenStore(db), audit.NewRepository(db.DB))
}

func TestLibrary_CreateAlbum(t *testing.T) {
	lib, dbPath := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))

	assert.True(t, lib.CreateAlbum("alice", "trip"))
	assert.False(t, lib.CreateAlbum("alice", "trip"))
	assert.False(t, lib.CreateAlbum("nobody", "trip"))

	// Mutations are committed as they happen.
	user, ok := reopenLibrary(t, dbPath).Store().GetUser("alice")
	require.True(t, ok)
	assert.NotNil(t, user.FindAlbumByName("trip"))
}

func TestLibrary_RenameAlbum(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))

	assert.True(t, lib.RenameAlbum("alice", "trip", "vacation"))
	assert.False(t, lib.RenameAlbum("alice", "vacation", "family"))
	assert.False(t, lib.RenameAlbum("alice", "missing", "x"))

	// Renaming to its own name is a no-op rename, not a collision.
	assert.True(t, lib.RenameAlbum("alice", "vacation", "vacation"))
}

func TestLibrary_DeleteAlbum_DetachesOnly(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))

	photo, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)
	require.True(t, lib.CopyPhoto("alice", "trip", "family", "/photos/a.jpg"))

	assert.True(t, lib.DeleteAlbum("alice", "trip"))
	assert.False(t, lib.DeleteAlbum("alice", "trip"))

	user, _ := lib.Store().GetUser("alice")
	kept := user.FindAlbumByName("family").FindPhotoByPath("/photos/a.jpg")
	assert.Same(t, photo, kept)
}

func TestLibrary_AddPhoto_ReusesSharedInstance(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))

	first, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)

	// Adding the same path to a second album reuses the instance.
	second, ok := lib.AddPhoto("alice", "family", "/photos/a.jpg")
	require.True(t, ok)
	assert.Same(t, first, second)

	// Duplicate in the same album is rejected.
	_, ok = lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	assert.False(t, ok)
}

func TestLibrary_CaptionAndTags(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	_, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)

	assert.True(t, lib.SetCaption("alice", "trip", "/photos/a.jpg", "sunset"))
	assert.False(t, lib.SetCaption("alice", "trip", "/photos/missing.jpg", "x"))

	tag := entities.NewTag("location", "NYC")
	assert.True(t, lib.AddTag("alice", "trip", "/photos/a.jpg", tag))
	assert.False(t, lib.AddTag("alice", "trip", "/photos/a.jpg", tag))
	assert.True(t, lib.RemoveTag("alice", "trip", "/photos/a.jpg", tag))
	assert.False(t, lib.RemoveTag("alice", "trip", "/photos/a.jpg", tag))
}

func TestLibrary_CopyPhoto(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))
	_, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)

	assert.True(t, lib.CopyPhoto("alice", "trip", "family", "/photos/a.jpg"))
	// Already present in target.
	assert.False(t, lib.CopyPhoto("alice", "trip", "family", "/photos/a.jpg"))
	// Source still holds the photo after a copy.
	user, _ := lib.Store().GetUser("alice")
	assert.Equal(t, 1, user.FindAlbumByName("trip").PhotoCount())
}

func TestLibrary_MovePhoto(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))
	_, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)

	assert.True(t, lib.MovePhoto("alice", "trip", "family", "/photos/a.jpg"))

	user, _ := lib.Store().GetUser("alice")
	assert.Zero(t, user.FindAlbumByName("trip").PhotoCount())
	assert.Equal(t, 1, user.FindAlbumByName("family").PhotoCount())
}

func TestLibrary_MovePhoto_FailedAddLeavesSourceIntact(t *testing.T) {
	lib, _ := setupLibrary(t)
	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	require.True(t, lib.CreateAlbum("alice", "family"))
	_, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)
	require.True(t, lib.CopyPhoto("alice", "trip", "family", "/photos/a.jpg"))

	// Target already holds the photo, so the move is refused and the
	// source keeps it.
	assert.False(t, lib.MovePhoto("alice", "trip", "family", "/photos/a.jpg"))
	user, _ := lib.Store().GetUser("alice")
	assert.Equal(t, 1, user.FindAlbumByName("trip").PhotoCount())
}

func TestLibrary_FileMissing(t *testing.T) {
	lib, _ := setupLibrary(t)

	present := filepath.Join(t.TempDir(), "here.jpg")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))

	assert.False(t, lib.FileMissing(entities.NewPhoto(present)))
	assert.True(t, lib.FileMissing(entities.NewPhoto("/gone/away.jpg")))
}

func TestLibrary_MutationsAreAudited(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "photos.db")
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	auditRepo := audit.NewRepository(db.DB)
	lib := NewLibrary(database.OpenStore(db), auditRepo)

	require.NotNil(t, lib.AddUser("alice"))
	require.True(t, lib.CreateAlbum("alice", "trip"))
	_, ok := lib.AddPhoto("alice", "trip", "/photos/a.jpg")
	require.True(t, ok)

	events, err := auditRepo.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	actions := []audit.Action{events[0].Action, events[1].Action, events[2].Action}
	assert.ElementsMatch(t,
		[]audit.Action{audit.ActionUserAdd, audit.ActionAlbumCreate, audit.ActionPhotoAdd},
		actions)
}
