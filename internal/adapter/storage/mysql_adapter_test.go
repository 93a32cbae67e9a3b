package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/campuseats?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_store (k VARCHAR(191) PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	return db
}

func TestMySQLGet_MissingKey(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = 'test-kv-missing'`)

	_, ok, err := adapter.Get(ctx, "test-kv-missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestMySQLSetGet_Roundtrip(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = 'test-kv-roundtrip'`)

	if err := adapter.Set(ctx, "test-kv-roundtrip", `{"date":"2025-03-10","counter":3}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := adapter.Get(ctx, "test-kv-roundtrip")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if val != `{"date":"2025-03-10","counter":3}` {
		t.Errorf("unexpected value: %s", val)
	}

	db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = 'test-kv-roundtrip'`)
}

func TestMySQLSet_Upsert(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = 'test-kv-upsert'`)
	adapter.Set(ctx, "test-kv-upsert", "one")
	adapter.Set(ctx, "test-kv-upsert", "two")

	val, _, err := adapter.Get(ctx, "test-kv-upsert")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "two" {
		t.Errorf("expected upsert to two, got %s", val)
	}

	// Exactly one row per key.
	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store WHERE k = 'test-kv-upsert'`).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = 'test-kv-upsert'`)
}
