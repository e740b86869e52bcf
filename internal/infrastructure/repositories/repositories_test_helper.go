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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		nid_number TEXT,
		nid_verified BOOLEAN NOT NULL DEFAULT 0,
		nid_verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPropertyTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE properties (
		id TEXT PRIMARY KEY,
		landlord_id TEXT NOT NULL,
		title TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		rent REAL NOT NULL,
		deposit REAL NOT NULL DEFAULT 0,
		bedrooms INTEGER NOT NULL,
		bathrooms INTEGER NOT NULL,
		description TEXT,
		is_available BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE property_images (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		path TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE utility_bills (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		bill_type TEXT NOT NULL,
		amount REAL NOT NULL,
		billing_month TEXT NOT NULL,
		is_paid BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLeaseTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE leases (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		monthly_rent REAL NOT NULL,
		terms TEXT,
		document_path TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE rent_payments (
		id TEXT PRIMARY KEY,
		lease_id TEXT NOT NULL,
		amount REAL NOT NULL,
		due_date DATETIME NOT NULL,
		payment_date DATETIME,
		status TEXT NOT NULL,
		slip_path TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMaintenanceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE maintenance_requests (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		description TEXT NOT NULL,
		request_date DATETIME NOT NULL,
		completed_at DATETIME,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createPropertyTables(t, db)
	createLeaseTables(t, db)
	createMaintenanceTable(t, db)
}
