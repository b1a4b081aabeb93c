// Package stock guarantees the stock user's sample content exists at
// startup: a stock album populated with one photo per image file found
// in the stock directory, synthesizing placeholder files when too few
// are present.
package stock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/photokeep/photokeep/internal/database"
	"github.com/photokeep/photokeep/internal/entities"
)

// DefaultMinimum is how many stock image files must exist before
// placeholder synthesis is skipped.
const DefaultMinimum = 5

var placeholderNames = []string{
	"beach.jpg",
	"mountains.jpg",
	"city.jpg",
	"forest.jpg",
	"sunset.jpg",
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// Seeder populates the stock user's album from a directory of sample
// image files. Seeding is idempotent: files already represented in the
// album by path are skipped.
type Seeder struct {
	store   *database.Store
	dir     string
	minimum int
	log     *logrus.Entry
}

// NewSeeder creates a seeder reading sample files from dir. minimum
// values below one fall back to DefaultMinimum.
func NewSeeder(store *database.Store, dir string, minimum int) *Seeder {
	if minimum < 1 {
		minimum = DefaultMinimum
	}
	return &Seeder{
		store:   store,
		dir:     dir,
		minimum: minimum,
		log:     logrus.WithField("component", "stock"),
	}
}

// Seed ensures the stock user, the stock album and the sample photos
// exist, then persists the graph. It returns how many photos were
// newly added to the stock album.
func (s *Seeder) Seed() (int, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create stock directory: %w", err)
	}

	user, ok := s.store.GetUser(entities.StockUsername)
	if !ok {
		if user = s.store.AddUser(entities.StockUsername); user == nil {
			return 0, fmt.Errorf("could not create stock user")
		}
	}
	album := user.FindAlbumByName(entities.StockAlbumName)
	if album == nil {
		album = entities.NewAlbum(entities.StockAlbumName)
		user.AddAlbum(album)
	}

	files, err := s.listImageFiles()
	if err != nil {
		return 0, err
	}
	if len(files) < s.minimum {
		if err := s.createPlaceholders(); err != nil {
			return 0, fmt.Errorf("failed to create placeholder photos: %w", err)
		}
		if files, err = s.listImageFiles(); err != nil {
			return 0, err
		}
	}

	added := 0
	for _, path := range files {
		if album.FindPhotoByPath(path) != nil {
			continue
		}
		name := filepath.Base(path)
		photo := entities.NewPhoto(path)
		photo.SetCaption("Stock photo: " + name)
		photo.AddTag(entities.NewTag("type", "stock"))
		photo.AddTag(entities.NewTag("filename", name))
		if album.AddPhoto(photo) {
			added++
		}
	}

	if added > 0 {
		s.log.WithField("added", added).Info("seeded stock album")
	}
	if err := s.store.Commit(); err != nil {
		return added, fmt.Errorf("failed to persist stock album: %w", err)
	}
	return added, nil
}

// listImageFiles returns the absolute paths of recognized image files
// in the stock directory, in name order.
func (s *Seeder) listImageFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}
		path, err := filepath.Abs(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

// createPlaceholders writes plain text stand-ins for the fixed list of
// sample names. They are not real images.
func (s *Seeder) createPlaceholders() error {
	for _, name := range placeholderNames {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content := "This is a placeholder for a stock photo: " + name
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
