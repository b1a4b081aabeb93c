package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Stock
		Logging
	}

	Database struct {
		Path string
	}
	Stock struct {
		Dir     string // Directory scanned for sample image files
		Minimum int    // Synthesize placeholders below this count
	}
	Logging struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("stock_dir", DefaultStockDir)
	v.SetDefault("stock_minimum", DefaultStockMinimum)
	v.SetDefault("log_level", "info")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Stock: Stock{
			Dir:     v.GetString("STOCK_DIR"),
			Minimum: v.GetInt("STOCK_MINIMUM"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
