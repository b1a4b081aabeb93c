package database

// Row types for the persisted user graph. The graph is content-addressed
// on the photo side: one photos row per file path, with album membership
// held in album_photos references. Loading therefore rebuilds exactly one
// Photo instance per path, so a photo shared by several albums stays
// shared across restarts.

type userRow struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;size:100"`
}

func (userRow) TableName() string { return "users" }

type albumRow struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"size:255"`
}

func (albumRow) TableName() string { return "albums" }

type photoRow struct {
	ID        uint   `gorm:"primaryKey"`
	FilePath  string `gorm:"uniqueIndex;size:1024"`
	Caption   string `gorm:"type:text"`
	DateTaken int64  `gorm:"not null"` // unix seconds
}

func (photoRow) TableName() string { return "photos" }

type albumPhotoRow struct {
	ID       uint `gorm:"primaryKey"`
	AlbumID  uint `gorm:"index"`
	PhotoID  uint `gorm:"index"`
	Position int  `gorm:"not null"`
}

func (albumPhotoRow) TableName() string { return "album_photos" }

type tagRow struct {
	ID       uint   `gorm:"primaryKey"`
	PhotoID  uint   `gorm:"index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"size:255"`
	Value    string `gorm:"size:255"`
}

func (tagRow) TableName() string { return "photo_tags" }
