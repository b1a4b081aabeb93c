package database

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/photokeep/photokeep/internal/entities"
)

// Store owns the full username→User graph for the lifetime of the
// process. It is constructed exactly once at startup and handed to
// every component needing persistence; all mutations of the graph flow
// back to disk through Commit.
type Store struct {
	db    *Database
	users map[string]*entities.User
	log   *logrus.Entry
}

// OpenStore loads the persisted user graph from db. A missing, empty or
// unreadable graph is treated as a first run: the store starts empty and
// bootstraps the admin user and the stock user with its empty stock
// album.
func OpenStore(db *Database) *Store {
	s := &Store{
		db:    db,
		users: make(map[string]*entities.User),
		log:   logrus.WithField("component", "store"),
	}

	if err := s.load(); err != nil {
		s.log.WithError(err).Warn("could not load user graph, starting empty")
		s.users = make(map[string]*entities.User)
	}

	if len(s.users) == 0 {
		s.bootstrap()
	}

	return s
}

func (s *Store) bootstrap() {
	admin := entities.NewUser(entities.AdminUsername)
	stock := entities.NewUser(entities.StockUsername)
	stock.AddAlbum(entities.NewAlbum(entities.StockAlbumName))

	s.users[admin.Username()] = admin
	s.users[stock.Username()] = stock
	s.log.Info("bootstrapped admin and stock users")
}

// GetUser returns the user with the given username. It never creates.
func (s *Store) GetUser(username string) (*entities.User, bool) {
	user, ok := s.users[username]
	return user, ok
}

// UserExists reports whether a user with the given username exists.
func (s *Store) UserExists(username string) bool {
	_, ok := s.users[username]
	return ok
}

// AddUser creates a user with the given username and persists the graph
// immediately. It returns nil when the username is already taken.
func (s *Store) AddUser(username string) *entities.User {
	if s.UserExists(username) {
		return nil
	}

	user := entities.NewUser(username)
	s.users[username] = user

	if err := s.Commit(); err != nil {
		s.log.WithError(err).WithField("username", username).Error("failed to persist new user")
	}
	return user
}

// RemoveUser detaches the user and persists the graph. It refuses to
// remove the admin user or a user that does not exist.
func (s *Store) RemoveUser(username string) bool {
	if !s.UserExists(username) || username == entities.AdminUsername {
		return false
	}

	delete(s.users, username)

	if err := s.Commit(); err != nil {
		s.log.WithError(err).WithField("username", username).Error("failed to persist user removal")
	}
	return true
}

// Usernames returns a snapshot of all usernames. Order is not stable
// across loads; callers needing stable output sort it themselves.
func (s *Store) Usernames() []string {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	return names
}

// Commit serializes the entire user graph into the database in a single
// transaction, replacing the previous snapshot. The in-memory graph
// stays authoritative whether or not the write succeeds.
func (s *Store) Commit() error {
	return s.db.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"photo_tags", "album_photos", "photos", "albums", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		usernames := s.Usernames()
		sort.Strings(usernames)

		// One photos row per file path, shared by every album
		// referencing it. The first-encountered instance wins when
		// independently-constructed duplicates exist.
		photoIDs := make(map[string]uint)

		for _, username := range usernames {
			user := s.users[username]
			ur := userRow{Username: username}
			if err := tx.Create(&ur).Error; err != nil {
				return err
			}

			for albumPos, album := range user.Albums() {
				ar := albumRow{UserID: ur.ID, Position: albumPos, Name: album.Name()}
				if err := tx.Create(&ar).Error; err != nil {
					return err
				}

				for photoPos, photo := range album.Photos() {
					photoID, ok := photoIDs[photo.FilePath()]
					if !ok {
						var err error
						if photoID, err = createPhoto(tx, photo); err != nil {
							return err
						}
						photoIDs[photo.FilePath()] = photoID
					}

					link := albumPhotoRow{AlbumID: ar.ID, PhotoID: photoID, Position: photoPos}
					if err := tx.Create(&link).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func createPhoto(tx *gorm.DB, photo *entities.Photo) (uint, error) {
	pr := photoRow{
		FilePath:  photo.FilePath(),
		Caption:   photo.Caption(),
		DateTaken: photo.DateTaken().Unix(),
	}
	if err := tx.Create(&pr).Error; err != nil {
		return 0, err
	}
	for pos, tag := range photo.Tags() {
		tr := tagRow{PhotoID: pr.ID, Position: pos, Name: tag.Name, Value: tag.Value}
		if err := tx.Create(&tr).Error; err != nil {
			return 0, err
		}
	}
	return pr.ID, nil
}

func (s *Store) load() error {
	var userRows []userRow
	if err := s.db.DB.Order("id").Find(&userRows).Error; err != nil {
		return err
	}
	var albumRows []albumRow
	if err := s.db.DB.Order("user_id, position").Find(&albumRows).Error; err != nil {
		return err
	}
	var photoRows []photoRow
	if err := s.db.DB.Order("id").Find(&photoRows).Error; err != nil {
		return err
	}
	var tagRows []tagRow
	if err := s.db.DB.Order("photo_id, position").Find(&tagRows).Error; err != nil {
		return err
	}
	var linkRows []albumPhotoRow
	if err := s.db.DB.Order("album_id, position").Find(&linkRows).Error; err != nil {
		return err
	}

	tagsByPhoto := make(map[uint][]entities.Tag)
	for _, tr := range tagRows {
		tagsByPhoto[tr.PhotoID] = append(tagsByPhoto[tr.PhotoID], entities.NewTag(tr.Name, tr.Value))
	}

	photos := make(map[uint]*entities.Photo, len(photoRows))
	for _, pr := range photoRows {
		photos[pr.ID] = entities.RestorePhoto(
			pr.FilePath, pr.Caption, time.Unix(pr.DateTaken, 0), tagsByPhoto[pr.ID])
	}

	albums := make(map[uint]*entities.Album, len(albumRows))
	for _, ar := range albumRows {
		albums[ar.ID] = entities.NewAlbum(ar.Name)
	}
	for _, lr := range linkRows {
		album, photo := albums[lr.AlbumID], photos[lr.PhotoID]
		if album != nil && photo != nil {
			album.AddPhoto(photo)
		}
	}

	usersByID := make(map[uint]*entities.User, len(userRows))
	for _, ur := range userRows {
		user := entities.NewUser(ur.Username)
		usersByID[ur.ID] = user
		s.users[ur.Username] = user
	}
	for _, ar := range albumRows {
		if user := usersByID[ar.UserID]; user != nil {
			user.AddAlbum(albums[ar.ID])
		}
	}
	return nil
}
