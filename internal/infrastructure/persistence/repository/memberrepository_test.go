package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.MemberModel{})
	require.NoError(t, err)

	return db
}

func createTestMember(t *testing.T, email string) *member.Member {
	m, err := member.NewMember("Ada", "Lovelace", email, "", "", "")
	require.NoError(t, err)
	return m
}

func TestMemberRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create and load round trip", func(t *testing.T) {
		m := createTestMember(t, "ada@example.com")

		err := repo.Create(ctx, m)
		require.NoError(t, err)
		assert.NotZero(t, m.ID())

		found, err := repo.GetBySID(ctx, m.SID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, m.Email(), found.Email())
	})

	t.Run("duplicate email on live members is allowed", func(t *testing.T) {
		// Email uniqueness is a desk convention, not a schema constraint.
		first := createTestMember(t, "shared@example.com")
		require.NoError(t, repo.Create(ctx, first))

		second := createTestMember(t, "shared@example.com")
		err := repo.Create(ctx, second)
		assert.NoError(t, err)
	})
}

func TestMemberRepository_ReenrollAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db, logger.NewLogger())
	ctx := context.Background()

	former := createTestMember(t, "returning@example.com")
	require.NoError(t, repo.Create(ctx, former))
	require.NoError(t, repo.Delete(ctx, former.ID()))

	// A former member signs up again under the same address. The soft-deleted
	// row must not block the new one.
	returning := createTestMember(t, "returning@example.com")
	require.NoError(t, repo.Create(ctx, returning))
	assert.NotEqual(t, former.ID(), returning.ID())

	found, err := repo.GetByEmail(ctx, "returning@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, returning.ID(), found.ID())
}
