// Package search implements the photo query operations: date-range and
// tag boolean searches over a caller-supplied set of albums, normally
// all albums of one user.
//
// Every search is a plain linear scan; no index is maintained. Results
// are deduplicated by photo file path and keep first-encounter order:
// albums in the order given, photos in album order.
package search

import (
	"time"

	"github.com/photokeep/photokeep/internal/entities"
)

// ByDateRange returns the photos taken between start and end inclusive.
// Both bounds are truncated to whole seconds before comparison, matching
// the precision photos store their capture date with.
func ByDateRange(albums []*entities.Album, start, end time.Time) []*entities.Photo {
	start = start.Truncate(time.Second)
	end = end.Truncate(time.Second)
	return scan(albums, func(photo *entities.Photo) bool {
		taken := photo.DateTaken()
		return !taken.Before(start) && !taken.After(end)
	})
}

// ByTag returns the photos carrying a tag with exactly the given name
// and value.
func ByTag(albums []*entities.Album, name, value string) []*entities.Photo {
	return scan(albums, func(photo *entities.Photo) bool {
		return photo.HasTag(name, value)
	})
}

// ByTagsAnd returns the photos carrying both tags.
func ByTagsAnd(albums []*entities.Album, name1, value1, name2, value2 string) []*entities.Photo {
	return scan(albums, func(photo *entities.Photo) bool {
		return photo.HasTag(name1, value1) && photo.HasTag(name2, value2)
	})
}

// ByTagsOr returns the photos carrying at least one of the two tags.
func ByTagsOr(albums []*entities.Album, name1, value1, name2, value2 string) []*entities.Photo {
	return scan(albums, func(photo *entities.Photo) bool {
		return photo.HasTag(name1, value1) || photo.HasTag(name2, value2)
	})
}

func scan(albums []*entities.Album, match func(*entities.Photo) bool) []*entities.Photo {
	var results []*entities.Photo
	seen := make(map[string]bool)
	for _, album := range albums {
		for _, photo := range album.Photos() {
			if seen[photo.FilePath()] || !match(photo) {
				continue
			}
			seen[photo.FilePath()] = true
			results = append(results, photo)
		}
	}
	return results
}
