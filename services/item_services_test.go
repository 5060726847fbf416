package services

import (
	"fmt"
	"gin-marketplace/dto"
	"gin-marketplace/models"
	"gin-marketplace/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemService(t *testing.T) (IItemService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	return NewItemService(repositories.NewItemRepository(db)), db
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateSetsOwner(t *testing.T) {
	service, _ := setupItemService(t)

	item, err := service.Create(dto.CreateItemInput{
		Name:        "X",
		Description: "desc",
		Price:       floatPtr(1.0),
	}, 42)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), item.UserID)
}

func TestCreateAllowsZeroPrice(t *testing.T) {
	service, _ := setupItemService(t)

	item, err := service.Create(dto.CreateItemInput{
		Name:        "freebie",
		Description: "zero price",
		Price:       floatPtr(0),
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, item.Price)

	fetched, err := service.FindById(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, fetched.Price)
}

func TestFindAllClampsLimit(t *testing.T) {
	service, db := setupItemService(t)

	for i := 0; i < 120; i++ {
		require.NoError(t, db.Create(&models.Item{
			Name:        fmt.Sprintf("item-%d", i),
			Description: "desc",
			Price:       1.0,
			UserID:      1,
		}).Error)
	}

	items, err := service.FindAll(0, 500)
	assert.NoError(t, err)
	assert.Len(t, *items, 100)

	items, err = service.FindAll(0, 10)
	assert.NoError(t, err)
	assert.Len(t, *items, 10)

	items, err = service.FindAll(110, 100)
	assert.NoError(t, err)
	assert.Len(t, *items, 10)
}

func TestFindByUserIDFiltersOwner(t *testing.T) {
	service, db := setupItemService(t)

	require.NoError(t, db.Create(&models.Item{Name: "mine", Description: "d", Price: 1, UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Item{Name: "theirs", Description: "d", Price: 1, UserID: 2}).Error)

	items, err := service.FindByUserID(1)
	assert.NoError(t, err)
	require.Len(t, *items, 1)
	assert.Equal(t, "mine", (*items)[0].Name)
}

func TestUpdatePersistsPartialChange(t *testing.T) {
	service, _ := setupItemService(t)

	created, err := service.Create(dto.CreateItemInput{Name: "X", Description: "before", Price: floatPtr(1.0)}, 1)
	require.NoError(t, err)

	newPrice := 2.5
	updated, err := service.Update(created.ID, dto.UpdateItemInput{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, updated.Price)
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "before", updated.Description)

	// 変更がデータベースに書き込まれていること
	fetched, err := service.FindById(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, fetched.Price)
}

func TestUpdateMissingItem(t *testing.T) {
	service, _ := setupItemService(t)

	name := "Y"
	_, err := service.Update(999, dto.UpdateItemInput{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteMissingItem(t *testing.T) {
	service, _ := setupItemService(t)

	err := service.Delete(999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteRemovesItem(t *testing.T) {
	service, _ := setupItemService(t)

	created, err := service.Create(dto.CreateItemInput{Name: "X", Description: "d", Price: floatPtr(1.0)}, 1)
	require.NoError(t, err)

	assert.NoError(t, service.Delete(created.ID))

	_, err = service.FindById(created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
