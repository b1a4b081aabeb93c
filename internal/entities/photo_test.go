package entities

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoto_DateFromFileModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vacation.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	modTime := time.Date(2024, 3, 10, 14, 30, 45, 0, time.Local)
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	photo := NewPhoto(path)

	assert.Equal(t, path, photo.FilePath())
	assert.Equal(t, modTime.Truncate(time.Second), photo.DateTaken())
	assert.Empty(t, photo.Caption())
	assert.Empty(t, photo.Tags())
}

func TestNewPhoto_MissingFileFallsBackToNow(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	photo := NewPhoto("/does/not/exist.png")
	after := time.Now()

	assert.False(t, photo.DateTaken().Before(before))
	assert.False(t, photo.DateTaken().After(after))
	assert.Zero(t, photo.DateTaken().Nanosecond())
}

func TestPhoto_EqualByPathOnly(t *testing.T) {
	p := NewPhoto("/photos/a.jpg")
	q := NewPhoto("/photos/a.jpg")
	q.SetCaption("different caption")
	q.AddTag(NewTag("location", "NYC"))

	assert.True(t, p.Equal(q))
	assert.True(t, q.Equal(p))
	assert.False(t, p.Equal(NewPhoto("/photos/b.jpg")))
	assert.False(t, p.Equal(nil))
}

func TestPhoto_AddTag(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")

	assert.True(t, photo.AddTag(NewTag("location", "NYC")))
	assert.True(t, photo.AddTag(NewTag("person", "John")))
	assert.Len(t, photo.Tags(), 2)
}

func TestPhoto_AddTag_DuplicateRejected(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")

	require.True(t, photo.AddTag(NewTag("location", "NYC")))
	assert.False(t, photo.AddTag(NewTag("location", "NYC")))
	assert.Len(t, photo.Tags(), 1)

	// Same name, different value is a distinct tag.
	assert.True(t, photo.AddTag(NewTag("location", "Boston")))
	assert.Len(t, photo.Tags(), 2)
}

func TestPhoto_RemoveTag(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")
	photo.AddTag(NewTag("location", "NYC"))
	photo.AddTag(NewTag("person", "John"))

	assert.True(t, photo.RemoveTag(NewTag("location", "NYC")))
	assert.False(t, photo.RemoveTag(NewTag("location", "NYC")))
	assert.Equal(t, []Tag{NewTag("person", "John")}, photo.Tags())
}

func TestPhoto_HasTag(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")
	photo.AddTag(NewTag("location", "NYC"))

	assert.True(t, photo.HasTag("location", "NYC"))
	assert.False(t, photo.HasTag("location", "Boston"))
	assert.False(t, photo.HasTag("person", "NYC"))
}

func TestPhoto_FindTagsByName(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")
	photo.AddTag(NewTag("person", "John"))
	photo.AddTag(NewTag("location", "NYC"))
	photo.AddTag(NewTag("person", "Jane"))

	matches := photo.FindTagsByName("person")
	assert.Equal(t, []Tag{NewTag("person", "John"), NewTag("person", "Jane")}, matches)
	assert.Empty(t, photo.FindTagsByName("event"))
}

func TestPhoto_SetCaption(t *testing.T) {
	photo := NewPhoto("/photos/a.jpg")
	photo.SetCaption("first")
	photo.SetCaption("second")
	assert.Equal(t, "second", photo.Caption())
}

func TestRestorePhoto_DoesNotTouchFilesystem(t *testing.T) {
	taken := time.Date(2023, 7, 1, 9, 0, 0, 500, time.UTC)
	tags := []Tag{NewTag("type", "stock")}

	photo := RestorePhoto("/gone/file.jpg", "a caption", taken, tags)

	assert.Equal(t, "/gone/file.jpg", photo.FilePath())
	assert.Equal(t, "a caption", photo.Caption())
	assert.Equal(t, taken.Truncate(time.Second), photo.DateTaken())
	assert.Equal(t, tags, photo.Tags())
}
