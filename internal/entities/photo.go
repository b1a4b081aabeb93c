package entities

import (
	"os"
	"time"
)

// Photo is a reference to an image file plus its caption, capture date
// and tags. Photo identity is the file path alone: two photos with the
// same path are the same photo for containment and deduplication, no
// matter what their captions or tags say.
//
// Photos are shared by reference: the same *Photo may live in several
// albums of one user, and edits to its caption or tags are visible from
// every album holding it.
type Photo struct {
	filePath  string
	caption   string
	dateTaken time.Time
	tags      []Tag
}

// NewPhoto creates a photo for the given file path. The capture date is
// taken from the file's last-modified time, truncated to whole seconds;
// when the file cannot be stat'ed the current time is used instead. The
// date is frozen at construction and never recomputed.
func NewPhoto(filePath string) *Photo {
	taken := time.Now()
	if info, err := os.Stat(filePath); err == nil {
		taken = info.ModTime()
	}
	return &Photo{
		filePath:  filePath,
		dateTaken: taken.Truncate(time.Second),
	}
}

// RestorePhoto rebuilds a photo from persisted state without touching
// the filesystem. Used by the store on load.
func RestorePhoto(filePath, caption string, dateTaken time.Time, tags []Tag) *Photo {
	return &Photo{
		filePath:  filePath,
		caption:   caption,
		dateTaken: dateTaken.Truncate(time.Second),
		tags:      append([]Tag(nil), tags...),
	}
}

// FilePath returns the path identifying this photo.
func (p *Photo) FilePath() string { return p.filePath }

// Caption returns the current caption, empty by default.
func (p *Photo) Caption() string { return p.caption }

// SetCaption overwrites the caption unconditionally.
func (p *Photo) SetCaption(caption string) { p.caption = caption }

// DateTaken returns the capture date, truncated to whole seconds.
func (p *Photo) DateTaken() time.Time { return p.dateTaken }

// Tags returns a snapshot of the photo's tags in insertion order.
func (p *Photo) Tags() []Tag {
	return append([]Tag(nil), p.tags...)
}

// AddTag appends the tag and reports whether it was added. A tag with
// the same name and value already present leaves the photo unchanged.
func (p *Photo) AddTag(tag Tag) bool {
	for _, existing := range p.tags {
		if existing == tag {
			return false
		}
	}
	p.tags = append(p.tags, tag)
	return true
}

// RemoveTag removes the matching tag and reports whether it was found.
func (p *Photo) RemoveTag(tag Tag) bool {
	for i, existing := range p.tags {
		if existing == tag {
			p.tags = append(p.tags[:i], p.tags[i+1:]...)
			return true
		}
	}
	return false
}

// HasTag reports whether the photo carries a tag with exactly the given
// name and value.
func (p *Photo) HasTag(name, value string) bool {
	for _, tag := range p.tags {
		if tag.Name == name && tag.Value == value {
			return true
		}
	}
	return false
}

// FindTagsByName returns all tags with the given name, order preserved.
func (p *Photo) FindTagsByName(name string) []Tag {
	var matches []Tag
	for _, tag := range p.tags {
		if tag.Name == name {
			matches = append(matches, tag)
		}
	}
	return matches
}

// Equal reports whether two photos denote the same file.
func (p *Photo) Equal(other *Photo) bool {
	return other != nil && p.filePath == other.filePath
}
