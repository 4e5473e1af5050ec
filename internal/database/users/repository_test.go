package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mvoskres/postroom/internal/auth"
	"github.com/mvoskres/postroom/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func TestRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	t.Run("assigns id and timestamps", func(t *testing.T) {
		user, err := repo.Insert(ctx, "alice", "hashed-secret")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed-secret", user.PasswordHash)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("duplicate username returns conflict", func(t *testing.T) {
		_, err := repo.Insert(ctx, "alice", "another-hash")
		assert.ErrorIs(t, err, auth.ErrUsernameTaken)

		// Exactly one row persisted for the username
		var count int64
		require.NoError(t, repo.db.Model(&entities.User{}).Where("username = ?", "alice").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("different usernames both insert", func(t *testing.T) {
		user, err := repo.Insert(ctx, "bobby", "hash-b")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})
}

func TestRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.Insert(ctx, "alice", "hash")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("absent maps to not found", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.Insert(ctx, "alice", "hash")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("absent maps to not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("soft-deleted user is not found", func(t *testing.T) {
		require.NoError(t, repo.db.Delete(&entities.User{}, created.ID).Error)
		_, err := repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}
