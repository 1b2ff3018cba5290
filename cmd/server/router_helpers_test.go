package main

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB replaces the postgres openDB seam with in-memory sqlite.
// TranslateError stays on so duplicate-key mapping behaves like production.
func openTestDB(string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:server_%d?mode=memory&cache=shared", time.Now().UnixNano())
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
}
