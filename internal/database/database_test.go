package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mvoskres/postroom/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	t.Run("migrates the user table", func(t *testing.T) {
		assert.True(t, db.DB.Migrator().HasTable(&entities.User{}))
		assert.True(t, db.DB.Migrator().HasTable(&entities.AuditEvent{}))
	})

	t.Run("translates unique violations", func(t *testing.T) {
		require.NoError(t, db.DB.Create(&entities.User{Username: "alice", PasswordHash: "h"}).Error)
		err := db.DB.Create(&entities.User{Username: "alice", PasswordHash: "h2"}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestDatabase_Close(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
