package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dimko/miniblog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.Create("alice", "pbkdf2_sha256$1000$salt$key")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "pbkdf2_sha256$1000$salt$key", user.PasswordHash)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("alice", "hash")
	require.NoError(t, err)

	user, err := repo.GetByUsername("alice")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByUsername("nobody")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Create_AllowsDuplicates(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Create("alice", "hash-one")
	require.NoError(t, err)

	second, err := repo.Create("alice", "hash-two")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Lookup returns the earliest row
	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
	assert.Equal(t, "hash-one", user.PasswordHash)
}
