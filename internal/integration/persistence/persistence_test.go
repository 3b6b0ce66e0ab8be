package persistence_test

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/integration/persistence"
	"github.com/wealth-advisor/backend/internal/integration/persistence/model"
	"github.com/wealth-advisor/backend/internal/integration/storagetest"
)

// newTestDB opens a fresh in-memory database and migrates the full
// schema. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm connection: %v", err)
	}

	if err := db.AutoMigrate(
		&model.ClientModel{},
		&model.GoalModel{},
		&model.PortfolioModel{},
		&model.InsightModel{},
		&model.ScenarioModel{},
		&model.ActionModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

func TestPersistenceContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) *adapter.Storage {
		return persistence.NewStorage(newTestDB(t))
	})
}
