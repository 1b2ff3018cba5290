package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	// TranslateError matches the production gorm config; the duplicate-key
	// mapping in Create depends on it.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		user_type TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createListingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE listings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		listing_type TEXT NOT NULL,
		price REAL NOT NULL,
		location TEXT NOT NULL,
		state TEXT NOT NULL,
		bedrooms INTEGER,
		bathrooms INTEGER,
		size INTEGER,
		description TEXT NOT NULL,
		images TEXT,
		owner_id TEXT NOT NULL,
		owner_name TEXT NOT NULL,
		owner_phone TEXT NOT NULL,
		owner_email TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		views INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createUnlockTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE unlocks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		listing_id TEXT NOT NULL,
		reference TEXT NOT NULL,
		amount REAL NOT NULL,
		paid_at DATETIME NOT NULL,
		UNIQUE(user_id, listing_id)
	);`)
}
