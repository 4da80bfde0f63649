package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/datatypes"
)

var testDBCounter int

// newTestDB points the package at a fresh in-memory database.
func newTestDB(t *testing.T) {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter)
	if _, err := InitializeDBAt(dsn); err != nil {
		t.Fatalf("opening test database: %v", err)
	}
}

func TestInitializeDBIdempotent(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("DB_PATH", filepath.Join(dir, "test.db"))
	defer os.Unsetenv("DB_PATH")

	results := make([]interface{}, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = InitializeDB()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent InitializeDB calls produced different connections")
		}
	}
	if InitializeDB() != results[0] {
		t.Fatal("sequential InitializeDB call produced a different connection")
	}
}

func TestMigrationCreatesSchemaVersion(t *testing.T) {
	newTestDB(t)

	var version models.SchemaVersion
	if err := DB.First(&version).Error; err != nil {
		t.Fatalf("schema version row missing: %v", err)
	}
	if version.Version != schemaVersion {
		t.Fatalf("expected schema version %d, got %d", schemaVersion, version.Version)
	}
}

func TestMigrationDropsOldConfigStore(t *testing.T) {
	newTestDB(t)

	// Pretend this database predates the config reshape.
	if err := DB.Model(&models.SchemaVersion{}).Where("id = ?", 1).Update("version", 2).Error; err != nil {
		t.Fatalf("downgrading schema version: %v", err)
	}
	entry := models.ConfigEntry{Key: "payment", Value: datatypes.JSON(`{"legacy":true}`)}
	if err := DB.Create(&entry).Error; err != nil {
		t.Fatalf("writing legacy config: %v", err)
	}

	if err := performMigrations(DB); err != nil {
		t.Fatalf("re-running migrations: %v", err)
	}

	var count int64
	DB.Model(&models.ConfigEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected config store to be recreated empty, found %d rows", count)
	}

	var version models.SchemaVersion
	DB.First(&version)
	if version.Version != schemaVersion {
		t.Fatalf("expected schema version %d after migration, got %d", schemaVersion, version.Version)
	}
}
