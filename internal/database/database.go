// Package database persists the photo library as a single sqlite file.
//
// The Store owns the in-memory username→User graph and is the only
// entry and exit point for persistence: it loads the graph once at
// startup and Commit rewrites the whole graph in one transaction, so
// the file on disk is always a consistent snapshot.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/photokeep/photokeep/internal/database/audit"
)

// Database wraps the gorm connection to the library file.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (creating if needed) the sqlite database at dbPath
// and migrates the schema. The containing directory is created when it
// does not exist yet.
func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.AutoMigrate(
		&userRow{},
		&albumRow{},
		&photoRow{},
		&albumPhotoRow{},
		&tagRow{},
		&audit.Event{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

// OpenOrReset opens the database at dbPath, treating an unreadable or
// corrupt file as no prior state: the bad file is moved aside to
// dbPath+".corrupt" and a fresh database is created in its place, so
// the caller proceeds as on a first run.
func OpenOrReset(dbPath string) (*Database, error) {
	db, err := NewDatabase(dbPath)
	if err == nil {
		return db, nil
	}

	logrus.WithError(err).WithField("path", dbPath).
		Warn("library file unreadable, starting over")
	if renameErr := os.Rename(dbPath, dbPath+".corrupt"); renameErr != nil && !os.IsNotExist(renameErr) {
		return nil, fmt.Errorf("failed to move corrupt library file aside: %w", renameErr)
	}
	return NewDatabase(dbPath)
}

// Close closes the underlying sqlite connection.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
