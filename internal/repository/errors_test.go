package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub/internal/database"
	"recipehub/internal/domain"
)

// The composite unique indexes are what actually serialize concurrent
// duplicate writes; a second insert of the same pair must surface as a
// recognizable unique violation.
func TestIsUniqueViolation_SqliteDuplicateInsert(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Subscription{FollowerID: 1, AuthorID: 2}))

	err = repo.Create(ctx, &domain.Subscription{FollowerID: 1, AuthorID: 2})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// The reverse direction is a distinct pair and stays insertable
	assert.NoError(t, repo.Create(ctx, &domain.Subscription{FollowerID: 2, AuthorID: 1}))
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
}
