package repositories

import (
	"gin-marketplace/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll(offset int, limit int) (*[]models.Item, error)
	FindByUserID(userID uint) (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(newItem models.Item) (*models.Item, error)
	Update(updateItem models.Item) (*models.Item, error)
	Delete(itemID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll(offset int, limit int) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Offset(offset).Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindByUserID(userID uint) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Find(&items, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindById(itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(updateItem models.Item) (*models.Item, error) {
	result := r.db.Save(&updateItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &updateItem, nil
}

func (r *ItemRepository) Delete(itemID uint) error {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
