package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mvoskres/postroom/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AuditEvent{}))
	return db
}

func TestRepository_LogEvent(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	event := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Username:  "alice",
		Status:    entities.AuditStatusSuccess,
	}
	require.NoError(t, repo.LogEvent(event))
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero(), "CreatedAt backfilled when zero")
}

func TestRepository_GetEvents(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.LogEvent(&entities.AuditEvent{
			UserID:    uint(1 + i%2),
			EventType: entities.AuditEventAuth,
			Action:    "login",
			Status:    entities.AuditStatusSuccess,
			CreatedAt: time.Now().Add(time.Duration(-i) * time.Hour),
		}))
	}

	t.Run("all users", func(t *testing.T) {
		events, total, err := repo.GetEvents(0, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, events, 5)
		// Most recent first
		assert.True(t, events[0].CreatedAt.After(events[len(events)-1].CreatedAt))
	})

	t.Run("filtered by user", func(t *testing.T) {
		events, total, err := repo.GetEvents(2, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, e := range events {
			assert.EqualValues(t, 2, e.UserID)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := repo.GetEvents(0, 2, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, events, 2)
	})
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	now := time.Now()

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		Action:    "login",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: now.Add(-1 * time.Hour),
	}))

	deleted, err := repo.DeleteOldEvents(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, total, err := repo.GetEvents(0, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
