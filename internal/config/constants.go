package config

// Default locations for the library file and the stock photo source
const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./data/photos.db"

	// DefaultStockDir is the default directory scanned for stock photos
	DefaultStockDir = "./data/stock"

	// DefaultStockMinimum is how many stock image files must exist
	// before placeholders stop being synthesized
	DefaultStockMinimum = 5
)
