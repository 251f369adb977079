package postgres

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsFromFSOrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0002_seed.up.sql":     {Data: []byte("INSERT INTO users (username, email) VALUES ('a', 'a@b.c');")},
		"sql/migrations/0002_seed.down.sql":   {Data: []byte("DELETE FROM users;")},
		"sql/migrations/0001_tables.up.sql":   {Data: []byte("CREATE TABLE users (id BIGSERIAL PRIMARY KEY);")},
		"sql/migrations/0001_tables.down.sql": {Data: []byte("DROP TABLE users;")},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("ожидалось 2 миграции, получено %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[1].Version != 2 {
		t.Fatalf("миграции не упорядочены по версии: %+v", migrations)
	}
	if migrations[0].Name != "tables" || migrations[1].Name != "seed" {
		t.Fatalf("неожиданные имена миграций: %+v", migrations)
	}
}

func TestLoadMigrationsFromFSRejectsMissingPair(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0001_tables.up.sql": {Data: []byte("CREATE TABLE users (id BIGSERIAL PRIMARY KEY);")},
	}

	if _, err := loadMigrationsFromFS(fsys); err == nil {
		t.Fatalf("ожидалась ошибка для миграции без down-файла")
	}
}

func TestLoadMigrationsFromFSRejectsInvalidName(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/first-migration.sql": {Data: []byte("SELECT 1;")},
	}

	if _, err := loadMigrationsFromFS(fsys); err == nil {
		t.Fatalf("ожидалась ошибка для некорректного имени файла")
	}
}

func TestLoadMigrationsFromFSRejectsEmptyBody(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0001_tables.up.sql":   {Data: []byte("   \n")},
		"sql/migrations/0001_tables.down.sql": {Data: []byte("DROP TABLE users;")},
	}

	if _, err := loadMigrationsFromFS(fsys); err == nil {
		t.Fatalf("ожидалась ошибка для пустой миграции")
	}
}

func TestEmbeddedMigrationsAreWellFormed(t *testing.T) {
	migrations, err := loadMigrationsFromFS(migrationsFS)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatalf("в бинарь не попало ни одной миграции")
	}
	for i, m := range migrations {
		if i > 0 && m.Version <= migrations[i-1].Version {
			t.Fatalf("версии миграций должны строго расти: %+v", migrations)
		}
	}
}

func TestMigrationStatusIntegration(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)

	version, count, err := store.MigrationStatus(context.Background())
	if err != nil {
		t.Fatalf("migration status: %v", err)
	}
	if version < 2 || count < 2 {
		t.Fatalf("ожидались применённые миграции, получено version=%d count=%d", version, count)
	}
}
