// Package audit records library mutations so an operator can see who
// changed what and when. Events live in the same sqlite file as the
// user graph but are append-only and survive graph rewrites.
package audit

import (
	"time"

	"gorm.io/gorm"
)

type Action string

const (
	ActionUserAdd     Action = "user_add"
	ActionUserRemove  Action = "user_remove"
	ActionAlbumCreate Action = "album_create"
	ActionAlbumRename Action = "album_rename"
	ActionAlbumDelete Action = "album_delete"
	ActionPhotoAdd    Action = "photo_add"
	ActionPhotoRemove Action = "photo_remove"
	ActionPhotoCopy   Action = "photo_copy"
	ActionPhotoMove   Action = "photo_move"
	ActionCaptionSet  Action = "caption_set"
	ActionTagAdd      Action = "tag_add"
	ActionTagRemove   Action = "tag_remove"
	ActionStockSeed   Action = "stock_seed"
)

// Event is one recorded mutation of the library.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;size:100" json:"username"`
	Action    Action    `gorm:"index;size:50" json:"action"`
	Detail    string    `gorm:"size:500" json:"detail"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Event) TableName() string {
	return "audit_events"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Record saves an audit event.
func (r *Repository) Record(username string, action Action, detail string) error {
	event := Event{
		Username:  username,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	return r.db.Create(&event).Error
}

// Recent retrieves the latest events, most recent first.
func (r *Repository) Recent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []Event
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	return events, err
}

// ByUser retrieves the latest events for one username, most recent first.
func (r *Repository) ByUser(username string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []Event
	err := r.db.Where("username = ?", username).
		Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	return events, err
}
