package entities

import (
	"fmt"
	"time"
)

// Album is a named, ordered collection of photo references belonging to
// one user. Albums hold shared references, not copies: a photo may sit
// in several albums at once, and no photo appears twice in one album.
type Album struct {
	name   string
	photos []*Photo
}

// NewAlbum creates an empty album with the given name.
func NewAlbum(name string) *Album {
	return &Album{name: name}
}

// Name returns the album name.
func (a *Album) Name() string { return a.name }

// SetName renames the album. Uniqueness within the owning user is the
// caller's responsibility; the album does not re-validate it.
func (a *Album) SetName(name string) { a.name = name }

// Photos returns a snapshot of the album's photos in insertion order.
func (a *Album) Photos() []*Photo {
	return append([]*Photo(nil), a.photos...)
}

// PhotoCount returns the number of photos in the album.
func (a *Album) PhotoCount() int { return len(a.photos) }

// AddPhoto appends the photo and reports whether it was added. A photo
// with the same file path already present leaves the album unchanged.
func (a *Album) AddPhoto(photo *Photo) bool {
	for _, existing := range a.photos {
		if existing.Equal(photo) {
			return false
		}
	}
	a.photos = append(a.photos, photo)
	return true
}

// RemovePhoto removes the photo matching by file path and reports
// whether it was found. The photo itself stays alive in any other album
// still referencing it.
func (a *Album) RemovePhoto(photo *Photo) bool {
	for i, existing := range a.photos {
		if existing.Equal(photo) {
			a.photos = append(a.photos[:i], a.photos[i+1:]...)
			return true
		}
	}
	return false
}

// FindPhotoByPath returns the photo with the given file path, or nil.
func (a *Album) FindPhotoByPath(filePath string) *Photo {
	for _, photo := range a.photos {
		if photo.FilePath() == filePath {
			return photo
		}
	}
	return nil
}

// DateRange scans the album and returns the earliest and latest capture
// dates. ok is false for an empty album.
func (a *Album) DateRange() (earliest, latest time.Time, ok bool) {
	if len(a.photos) == 0 {
		return time.Time{}, time.Time{}, false
	}
	earliest = a.photos[0].DateTaken()
	latest = earliest
	for _, photo := range a.photos[1:] {
		taken := photo.DateTaken()
		if taken.Before(earliest) {
			earliest = taken
		}
		if taken.After(latest) {
			latest = taken
		}
	}
	return earliest, latest, true
}

func (a *Album) String() string {
	return fmt.Sprintf("%s (%d photos)", a.name, len(a.photos))
}
