package entities

// Reserved usernames. The admin account may never be removed; the stock
// account is auto-populated with sample content at startup.
const (
	AdminUsername = "admin"
	StockUsername = "stock"

	// StockAlbumName is the album the stock user's sample photos live in.
	StockAlbumName = "stock"
)

// User owns an ordered collection of uniquely-named albums.
type User struct {
	username string
	albums   []*Album
}

// NewUser creates a user with no albums.
func NewUser(username string) *User {
	return &User{username: username}
}

// Username returns the name identifying this user.
func (u *User) Username() string { return u.username }

// Albums returns a snapshot of the user's albums in insertion order.
func (u *User) Albums() []*Album {
	return append([]*Album(nil), u.albums...)
}

// AddAlbum appends the album and reports whether it was added. An album
// with the same name already present leaves the user unchanged.
func (u *User) AddAlbum(album *Album) bool {
	for _, existing := range u.albums {
		if existing.Name() == album.Name() {
			return false
		}
	}
	u.albums = append(u.albums, album)
	return true
}

// RemoveAlbum detaches the album and reports whether it was found.
// Photos in the album are untouched; any other album referencing them
// keeps them alive.
func (u *User) RemoveAlbum(album *Album) bool {
	for i, existing := range u.albums {
		if existing == album {
			u.albums = append(u.albums[:i], u.albums[i+1:]...)
			return true
		}
	}
	return false
}

// FindAlbumByName returns the first album with the given name, or nil.
func (u *User) FindAlbumByName(name string) *Album {
	for _, album := range u.albums {
		if album.Name() == name {
			return album
		}
	}
	return nil
}
