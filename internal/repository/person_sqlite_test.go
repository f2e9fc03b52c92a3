package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/person-api/internal/database"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/sqlerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSQLiteRepo(t *testing.T) *SQLitePersonRepository {
	t.Helper()

	logger := zerolog.Nop()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "persons.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(context.Background(), &logger, db.SQL))

	return NewSQLitePersonRepository(db.SQL)
}

func TestSQLiteListEmpty(t *testing.T) {
	repo := newSQLiteRepo(t)

	persons, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, persons)
	assert.Empty(t, persons)
}

func TestSQLiteCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	alice, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)
	assert.Positive(t, alice.ID)
	assert.Equal(t, "Alice", alice.Name)

	byID, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice, byID)

	byName, err := repo.GetByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, alice, byName)

	_, err = repo.GetByName(ctx, "alice")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = repo.GetByID(ctx, alice.ID+100)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestSQLiteListOrder(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	var want []model.Person
	for _, name := range []string{"Zed", "Amy", "Max"} {
		p, err := repo.Create(ctx, name)
		require.NoError(t, err)
		want = append(want, *p)
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteUniqueName(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	_, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Alice")
	require.Error(t, err)
	assert.Equal(t, sqlerr.UniqueViolation, sqlerr.ErrCode(err))
}

func TestSQLiteUpdateName(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	alice, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	updated, err := repo.UpdateName(ctx, alice.ID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, &model.Person{ID: alice.ID, Name: "Alicia"}, updated)

	_, err = repo.GetByName(ctx, "Alice")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = repo.UpdateName(ctx, alice.ID+1, "Ghost")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestSQLiteDelete(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	alice, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, alice.ID))

	_, err = repo.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), ErrPersonNotFound)
}

func TestSQLiteMigrateIsIdempotent(t *testing.T) {
	logger := zerolog.Nop()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "persons.db"), &logger)
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 2; i++ {
		require.NoError(t, database.MigrateSQLite(context.Background(), &logger, db.SQL))
	}
}
