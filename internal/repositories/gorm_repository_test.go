package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"bistro/internal/database"
	"bistro/internal/models"
	"bistro/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestGORMUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(setupDB(t))

	_, err := repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	user := &models.User{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	found, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.False(t, found.IsAdmin())

	t.Run("SetRole is repeatable", func(t *testing.T) {
		matched, modified, err := repo.SetRole(ctx, user.ID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)

		matched, modified, err = repo.SetRole(ctx, user.ID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(0), modified)

		matched, modified, err = repo.SetRole(ctx, "missing", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(0), matched)
		assert.Equal(t, int64(0), modified)

		found, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, found.IsAdmin())
	})

	t.Run("Update leaves empty fields alone", func(t *testing.T) {
		matched, err := repo.Update(ctx, user.ID, &models.User{Photo: "https://img/a.png"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)

		found, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Name)
		assert.Equal(t, "https://img/a.png", found.Photo)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestGORMMenuRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMMenuRepository(setupDB(t))

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	soup := &models.MenuItem{Name: "Tomato Soup", Category: "soup", Price: 6.5}
	salad := &models.MenuItem{Name: "Greek Salad", Category: "salad", Price: 9}
	require.NoError(t, repo.Create(ctx, soup))
	require.NoError(t, repo.Create(ctx, salad))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "salad", items[0].Category)

	matched, err := repo.Update(ctx, soup.ID, map[string]interface{}{"price": 7.0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := repo.GetByID(ctx, soup.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Price)
	assert.Equal(t, "Tomato Soup", got.Name)

	deleted, err := repo.Delete(ctx, soup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGORMCartRepositoryDeleteMany(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMCartRepository(setupDB(t))

	ids := make([]string, 0, 3)
	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		item := &models.CartItem{MenuID: uuid.New().String(), Email: email, Name: "Soup", Price: 5}
		require.NoError(t, repo.Create(ctx, item))
		ids = append(ids, item.ID)
	}

	deleted, err := repo.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = repo.DeleteMany(ctx, []string{ids[0], "unknown"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	items, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ids[1], items[0].ID)

	items, err = repo.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGORMPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMPaymentRepository(setupDB(t))

	revenue, err := repo.Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)

	first := &models.Payment{Email: "a@x.com", Price: 12.25, CartIDs: []string{"c1", "c2"}, MenuItemIDs: []string{"m1"}}
	second := &models.Payment{Email: "b@x.com", Price: 7.75, CartIDs: []string{}}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	payments, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, []string{"c1", "c2"}, payments[0].CartIDs)
	assert.Equal(t, []string{"m1"}, payments[0].MenuItemIDs)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	revenue, err = repo.Revenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, revenue, 0.001)
}
