package postgres

import (
	"context"
	"testing"
	"time"

	"fruitarians-api/internal/domain/article"
	"fruitarians-api/internal/domain/buah"
	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/infrastructure/database/postgres/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: gdb}
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func strPtr(s string) *string { return &s }

func TestUserRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	u := &user.User{
		Email:          "toko@buah.id",
		PasswordHashed: "hash",
		Name:           "Toko Segar",
		Phone:          "8123",
		Address:        user.Address{Country: "Indonesia", City: "Bandung", Detail: "Jl. Dago"},
		Role:           user.RoleToko,
		Description:    strPtr("buah lokal"),
		OperatingHours: &user.OperatingHours{OpenTime: "08:00", CloseTime: "17:00", StartDay: "Senin", EndDay: "Sabtu"},
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", got.Address.City)
	require.NotNil(t, got.OperatingHours)
	assert.Equal(t, "Sabtu", got.OperatingHours.EndDay)
	assert.Nil(t, got.ProfileImage)
	assert.Nil(t, got.ResetNonce)

	byEmail, err := repo.GetByEmail(ctx, "toko@buah.id")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = repo.GetByEmail(ctx, "nobody@buah.id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &user.User{Email: "a@buah.id", Name: "Satu", Role: user.RoleUser}))
	err := repo.Create(ctx, &user.User{Email: "a@buah.id", Name: "Dua", Role: user.RoleUser})
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestUserRepositoryListByRoleOrdered(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.UserModel{
		{ID: "c", Email: "c@x.id", Name: "C", Role: "vendor", CreatedAt: base, UpdatedAt: base},
		{ID: "b", Email: "b@x.id", Name: "B", Role: "vendor", CreatedAt: base.Add(-time.Hour), UpdatedAt: base},
		{ID: "a", Email: "a@x.id", Name: "A", Role: "vendor", CreatedAt: base, UpdatedAt: base},
		{ID: "t", Email: "t@x.id", Name: "T", Role: "toko", CreatedAt: base, UpdatedAt: base},
	}
	require.NoError(t, db.DB.Create(&rows).Error)

	got, err := repo.ListByRole(ctx, user.RoleVendor)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)

	none, err := repo.ListByRole(ctx, user.RoleUser)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	u := &user.User{Email: "v@buah.id", Name: "Vendor", Role: user.RoleVendor}
	require.NoError(t, repo.Create(ctx, u))

	u.Name = "Vendor Baru"
	u.ResetNonce = strPtr("abc")
	u.ProfileImage = strPtr("https://cdn/x.jpg")
	u.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vendor Baru", got.Name)
	require.NotNil(t, got.ResetNonce)
	assert.Equal(t, "abc", *got.ResetNonce)

	got.ResetNonce = nil
	require.NoError(t, repo.Update(ctx, got))
	cleared, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.ResetNonce)

	err = repo.Update(ctx, &user.User{ID: "ghost", Email: "g@x.id", UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestBuahRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBuahRepository(db)

	stock := 4
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.BuahModel{
		{ID: "b2", Name: "Mangga", Price: "20000", CreatorID: "toko-1", CreatedAt: base.Add(time.Minute), UpdatedAt: base},
		{ID: "b1", Name: "Apel", Price: "15000/kg", Stock: &stock, CreatorID: "toko-1", CreatedAt: base, UpdatedAt: base},
		{ID: "b3", Name: "Jeruk", Price: "9000", CreatorID: "toko-2", CreatedAt: base, UpdatedAt: base},
	}
	require.NoError(t, db.DB.Create(&rows).Error)

	items, err := repo.ListByCreator(ctx, "toko-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, 4, items[0].StockOrZero())
	assert.Equal(t, 0, items[1].StockOrZero())

	got, err := repo.GetByID(ctx, "b3")
	require.NoError(t, err)
	assert.Equal(t, "toko-2", got.CreatorID)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, buah.ErrBuahNotFound)
}

func TestArticleRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	created := time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)
	rows := []models.ArticleModel{
		{DocID: "d1", Number: 1, Title: "Manfaat Apel", CreatedAt: &created},
		{DocID: "d2", Number: 2, Title: "Musim Durian", CreatedAt: &created},
	}
	require.NoError(t, db.DB.Create(&rows).Error)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	got, err := repo.GetByNumber(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Musim Durian", got.Title)

	_, err = repo.GetByNumber(ctx, 99)
	assert.ErrorIs(t, err, article.ErrArticleNotFound)
}
