// Package services holds the library service, the boundary the UI
// layer talks to. Every mutating operation applies the change to the
// in-memory graph, persists the whole graph, and records an audit
// event. Rejections (duplicate names, missing selections) come back as
// a false result with the graph untouched; persistence failures are
// logged and swallowed, so the in-memory state stays authoritative for
// the rest of the session.
package services

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/photokeep/photokeep/internal/database"
	"github.com/photokeep/photokeep/internal/database/audit"
	"github.com/photokeep/photokeep/internal/entities"
)

// Library exposes the photo-library operations the UI calls.
type Library struct {
	store *database.Store
	audit *audit.Repository
	log   *logrus.Entry
}

// NewLibrary creates the library service on top of the store.
func NewLibrary(store *database.Store, auditRepo *audit.Repository) *Library {
	return &Library{
		store: store,
		audit: auditRepo,
		log:   logrus.WithField("component", "library"),
	}
}

// Store returns the underlying user store for read access.
func (l *Library) Store() *database.Store { return l.store }

// AddUser creates a new user, or returns nil when the name is taken.
func (l *Library) AddUser(username string) *entities.User {
	user := l.store.AddUser(username)
	if user != nil {
		l.record(username, audit.ActionUserAdd, "user created")
	}
	return user
}

// RemoveUser deletes a user. The admin user is refused.
func (l *Library) RemoveUser(username string) bool {
	if !l.store.RemoveUser(username) {
		return false
	}
	l.record(username, audit.ActionUserRemove, "user removed")
	return true
}

// CreateAlbum adds an empty album to the user. False when the user is
// missing or the album name is already taken.
func (l *Library) CreateAlbum(username, name string) bool {
	user, ok := l.store.GetUser(username)
	if !ok || !user.AddAlbum(entities.NewAlbum(name)) {
		return false
	}
	l.commit(username, audit.ActionAlbumCreate, fmt.Sprintf("created album %q", name))
	return true
}

// RenameAlbum renames an album, re-checking name uniqueness against the
// user's other albums.
func (l *Library) RenameAlbum(username, oldName, newName string) bool {
	user, ok := l.store.GetUser(username)
	if !ok {
		return false
	}
	album := user.FindAlbumByName(oldName)
	if album == nil {
		return false
	}
	if other := user.FindAlbumByName(newName); other != nil && other != album {
		return false
	}
	album.SetName(newName)
	l.commit(username, audit.ActionAlbumRename, fmt.Sprintf("renamed album %q to %q", oldName, newName))
	return true
}

// DeleteAlbum detaches an album from the user. Photos referenced by
// other albums stay alive.
func (l *Library) DeleteAlbum(username, name string) bool {
	user, ok := l.store.GetUser(username)
	if !ok {
		return false
	}
	album := user.FindAlbumByName(name)
	if album == nil || !user.RemoveAlbum(album) {
		return false
	}
	l.commit(username, audit.ActionAlbumDelete, fmt.Sprintf("deleted album %q", name))
	return true
}

// AddPhoto adds the photo at filePath to the album. When another album
// of the same user already holds a photo with that path, the existing
// instance is reused so caption and tag edits stay shared.
func (l *Library) AddPhoto(username, albumName, filePath string) (*entities.Photo, bool) {
	user, ok := l.store.GetUser(username)
	if !ok {
		return nil, false
	}
	album := user.FindAlbumByName(albumName)
	if album == nil {
		return nil, false
	}

	photo := l.findPhotoAnywhere(user, filePath)
	if photo == nil {
		photo = entities.NewPhoto(filePath)
	}
	if !album.AddPhoto(photo) {
		return nil, false
	}
	l.commit(username, audit.ActionPhotoAdd,
		fmt.Sprintf("added %s to album %q", filePath, albumName))
	return photo, true
}

// RemovePhoto removes the photo with the given path from the album.
func (l *Library) RemovePhoto(username, albumName, filePath string) bool {
	album, photo := l.findPhoto(username, albumName, filePath)
	if photo == nil || !album.RemovePhoto(photo) {
		return false
	}
	l.commit(username, audit.ActionPhotoRemove,
		fmt.Sprintf("removed %s from album %q", filePath, albumName))
	return true
}

// SetCaption overwrites the photo's caption. The change is visible from
// every album holding the photo.
func (l *Library) SetCaption(username, albumName, filePath, caption string) bool {
	_, photo := l.findPhoto(username, albumName, filePath)
	if photo == nil {
		return false
	}
	photo.SetCaption(caption)
	l.commit(username, audit.ActionCaptionSet, fmt.Sprintf("recaptioned %s", filePath))
	return true
}

// AddTag attaches a tag to the photo; duplicates are rejected.
func (l *Library) AddTag(username, albumName, filePath string, tag entities.Tag) bool {
	_, photo := l.findPhoto(username, albumName, filePath)
	if photo == nil || !photo.AddTag(tag) {
		return false
	}
	l.commit(username, audit.ActionTagAdd, fmt.Sprintf("tagged %s with %s", filePath, tag))
	return true
}

// RemoveTag removes a tag from the photo.
func (l *Library) RemoveTag(username, albumName, filePath string, tag entities.Tag) bool {
	_, photo := l.findPhoto(username, albumName, filePath)
	if photo == nil || !photo.RemoveTag(tag) {
		return false
	}
	l.commit(username, audit.ActionTagRemove, fmt.Sprintf("untagged %s from %s", tag, filePath))
	return true
}

// CopyPhoto adds the photo to the target album as the same shared
// reference. False when the photo is missing from the source album or
// already present in the target.
func (l *Library) CopyPhoto(username, fromAlbum, toAlbum, filePath string) bool {
	user, ok := l.store.GetUser(username)
	if !ok {
		return false
	}
	target := user.FindAlbumByName(toAlbum)
	_, photo := l.findPhoto(username, fromAlbum, filePath)
	if target == nil || photo == nil || !target.AddPhoto(photo) {
		return false
	}
	l.commit(username, audit.ActionPhotoCopy,
		fmt.Sprintf("copied %s from %q to %q", filePath, fromAlbum, toAlbum))
	return true
}

// MovePhoto adds the photo to the target album and, only if that
// succeeded, removes it from the source album.
func (l *Library) MovePhoto(username, fromAlbum, toAlbum, filePath string) bool {
	user, ok := l.store.GetUser(username)
	if !ok {
		return false
	}
	target := user.FindAlbumByName(toAlbum)
	source, photo := l.findPhoto(username, fromAlbum, filePath)
	if target == nil || photo == nil || !target.AddPhoto(photo) {
		return false
	}
	source.RemovePhoto(photo)
	l.commit(username, audit.ActionPhotoMove,
		fmt.Sprintf("moved %s from %q to %q", filePath, fromAlbum, toAlbum))
	return true
}

// FileMissing reports whether the photo's file is gone from disk. This
// is a display-time condition: the photo stays in the model either way.
func (l *Library) FileMissing(photo *entities.Photo) bool {
	_, err := os.Stat(photo.FilePath())
	return err != nil
}

// Commit persists the current graph once more, for the save-on-exit
// step. The error is returned so the caller can decide how loudly to
// report it.
func (l *Library) Commit() error {
	return l.store.Commit()
}

func (l *Library) findPhoto(username, albumName, filePath string) (*entities.Album, *entities.Photo) {
	user, ok := l.store.GetUser(username)
	if !ok {
		return nil, nil
	}
	album := user.FindAlbumByName(albumName)
	if album == nil {
		return nil, nil
	}
	return album, album.FindPhotoByPath(filePath)
}

func (l *Library) findPhotoAnywhere(user *entities.User, filePath string) *entities.Photo {
	for _, album := range user.Albums() {
		if photo := album.FindPhotoByPath(filePath); photo != nil {
			return photo
		}
	}
	return nil
}

func (l *Library) commit(username string, action audit.Action, detail string) {
	if err := l.store.Commit(); err != nil {
		l.log.WithError(err).WithField("action", string(action)).
			Error("failed to persist library, in-memory state kept")
	}
	l.record(username, action, detail)
}

func (l *Library) record(username string, action audit.Action, detail string) {
	if l.audit == nil {
		return
	}
	if err := l.audit.Record(username, action, detail); err != nil {
		l.log.WithError(err).Warn("failed to record audit event")
	}
}
