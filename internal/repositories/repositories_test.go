package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type catalogFixture struct {
	db         *gorm.DB
	products   *repositories.GORMProductRepository
	categories *repositories.GORMCategoryRepository
	conditions *repositories.GORMConditionRepository
	images     *repositories.GORMImageRepository
	category   models.Category
	condition  models.Condition
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	db := openDB(t)
	f := &catalogFixture{
		db:         db,
		products:   repositories.NewGORMProductRepository(db),
		categories: repositories.NewGORMCategoryRepository(db),
		conditions: repositories.NewGORMConditionRepository(db),
		images:     repositories.NewGORMImageRepository(db),
		category:   models.Category{Name: "Shirts", BannerImage: "category/banner.png"},
		condition:  models.Condition{Name: "New"},
	}
	ctx := context.Background()
	require.NoError(t, f.categories.Create(ctx, &f.category))
	require.NoError(t, f.conditions.Create(ctx, &f.condition))
	return f
}

func (f *catalogFixture) product(t *testing.T, name string) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:        name,
		CategoryID:  f.category.ID,
		ConditionID: f.condition.ID,
		Description: "test product",
		Ratings:     1,
		Properties:  []models.Property{{Name: "size", Value: []string{"M"}}},
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestProductRepository_CreateAddsAlbum(t *testing.T) {
	f := newCatalogFixture(t)
	p := f.product(t, "Linen Shirt")

	require.NotNil(t, p.Album)
	assert.NotZero(t, p.Album.ID)

	got, err := f.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Album)
	assert.Equal(t, "Linen Shirt", got.Album.Name)
	assert.Empty(t, got.Album.Images)
	assert.Equal(t, "Shirts", got.Category.Name)
	assert.Equal(t, "New", got.Condition.Name)
	assert.Equal(t, []models.Property{{Name: "size", Value: []string{"M"}}}, got.Properties)
}

func TestProductRepository_ListSearch(t *testing.T) {
	f := newCatalogFixture(t)
	f.product(t, "Blue Shirt")
	f.product(t, "SHIRT dress")
	f.product(t, "50% off mug")
	f.product(t, "snake_case tee")
	f.product(t, "Plain tee")
	ctx := context.Background()

	cases := map[string]int{
		"":      5,
		"shirt": 2,
		"%":     1,
		"_":     1,
		"tee":   2,
		"zzz":   0,
	}
	for search, want := range cases {
		products, err := f.products.List(ctx, search)
		require.NoError(t, err, search)
		assert.Len(t, products, want, "search %q", search)
	}
}

func TestProductRepository_GetByIDs(t *testing.T) {
	f := newCatalogFixture(t)
	a := f.product(t, "A")
	b := f.product(t, "B")
	ctx := context.Background()

	products, err := f.products.GetByIDs(ctx, []uint{b.ID, a.ID, 999})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, a.ID, products[0].ID)

	products, err = f.products.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_UpdateAndNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	p := f.product(t, "Old name")
	ctx := context.Background()

	p.Name = "New name"
	p.Price = 4200
	p.InStock = false
	require.NoError(t, f.products.Update(ctx, p))

	got, err := f.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New name", got.Name)
	assert.Equal(t, int64(4200), got.Price)

	err = f.products.Update(ctx, &models.Product{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = f.products.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = f.products.Delete(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoryRepository_DeleteCascades(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	p := f.product(t, "Linen Shirt")
	require.NoError(t, f.images.Create(ctx, &models.Image{Name: "front", AlbumID: p.Album.ID, Path: "image_albums/images/front.png"}))

	customer := models.ShippingAddress{FirstName: "Ada", LastName: "Lovelace", Country: "UK", State: "London", PostalCode: "W1", AddressOne: "a", AddressTwo: "b"}
	require.NoError(t, f.db.Create(&customer).Error)
	require.NoError(t, f.db.Create(&models.Order{ProductID: p.ID, CustomerID: customer.ID, Quantity: 1}).Error)

	paths, err := f.categories.Delete(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Contains(t, paths, "image_albums/images/front.png")
	assert.Contains(t, paths, "category/banner.png")

	assert.Equal(t, int64(0), count(t, f.db, &models.Category{}))
	assert.Equal(t, int64(0), count(t, f.db, &models.Product{}))
	assert.Equal(t, int64(0), count(t, f.db, &models.ImageAlbum{}))
	assert.Equal(t, int64(0), count(t, f.db, &models.Image{}))
	assert.Equal(t, int64(0), count(t, f.db, &models.Order{}))
	assert.Equal(t, int64(1), count(t, f.db, &models.ShippingAddress{}))

	_, err = f.categories.Delete(ctx, f.category.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoryRepository_DeleteKeepsForeignMedia(t *testing.T) {
	db := openDB(t)
	categories := repositories.NewGORMCategoryRepository(db)
	ctx := context.Background()

	category := models.Category{
		Name:           "Mugs",
		BannerImage:    "image_albums/images/front.png",
		ThumbnailImage: "https://cdn.example.com/mugs.png",
	}
	require.NoError(t, categories.Create(ctx, &category))

	paths, err := categories.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestConditionRepository_DeleteCascades(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.product(t, "Linen Shirt")

	_, err := f.conditions.Delete(ctx, f.condition.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count(t, f.db, &models.Product{}))
	assert.Equal(t, int64(0), count(t, f.db, &models.ImageAlbum{}))
	assert.Equal(t, int64(1), count(t, f.db, &models.Category{}))
}

func TestProductRepository_ListByCategories(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	other := models.Category{Name: "Mugs"}
	require.NoError(t, f.categories.Create(ctx, &other))
	f.product(t, "Shirt")

	products, err := f.products.ListByCategories(ctx, []uint{f.category.ID, other.ID})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Shirts", products[0].Category.Name)

	products, err = f.products.ListByCategories(ctx, []uint{other.ID})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUserRepository_CreateAddsProfile(t *testing.T) {
	db := openDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotNil(t, user.Profile)

	profile, err := repo.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	require.NotNil(t, profile.User)
	assert.Equal(t, "ada", profile.User.Username)
	assert.Equal(t, int64(1), count(t, db, &models.Profile{}))

	// A duplicate username rolls the whole registration back
	err = repo.Create(ctx, &models.User{Username: "ada", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.Equal(t, int64(1), count(t, db, &models.Profile{}))

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestNewsLetterRepository_CreateDuplicate(t *testing.T) {
	db := openDB(t)
	repo := repositories.NewGORMNewsLetterRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.NewsLetter{Email: "reader@example.com"}))
	err := repo.Create(ctx, &models.NewsLetter{Email: "reader@example.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.Equal(t, int64(1), count(t, db, &models.NewsLetter{}))
}
