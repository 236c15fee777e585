package database

import (
	"path/filepath"
	"testing"
	"time"

	"expenses-backend/internal/config"
	"expenses-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(dsn string) *config.Config {
	return &config.Config{DatabaseDriver: "sqlite", DatabaseDSN: dsn}
}

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(sqliteConfig(":memory:"))
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Expense{}))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.db")

	db, err := Open(sqliteConfig(path))
	require.NoError(t, err)

	exp := models.Expense{
		Amount:   10050,
		Category: "groceries",
		Date:     time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&exp).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// A second startup against the same file must keep existing rows.
	db, err = Open(sqliteConfig(path))
	require.NoError(t, err)

	var got models.Expense
	require.NoError(t, db.First(&got, exp.ID).Error)
	assert.Equal(t, int64(10050), got.Amount)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DatabaseDriver: "oracle", DatabaseDSN: "x"})
	assert.Error(t, err)
}
