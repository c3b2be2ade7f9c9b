package storage

import (
	"os"
	"path/filepath"

	"github.com/ericogr/game-balance/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (creating if needed) the sqlite database at the given
// path and keeps the schema updated via AutoMigrate. The parent directory is
// created so the default ./data/balance.db path works on a fresh checkout.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Project{}, &game.StatDefinition{}, &game.Character{}, &game.Enemy{}); err != nil {
		return nil, err
	}
	return db, nil
}
