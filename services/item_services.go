package services

import (
	"errors"
	"gin-marketplace/constants"
	"gin-marketplace/dto"
	"gin-marketplace/models"
	"gin-marketplace/repositories"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New(constants.ErrItemNotFound)

type IItemService interface {
	FindAll(offset int, limit int) (*[]models.Item, error)
	FindByUserID(userID uint) (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll(offset int, limit int) (*[]models.Item, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return s.repository.FindAll(offset, limit)
}

func (s *ItemService) FindByUserID(userID uint) (*[]models.Item, error) {
	return s.repository.FindByUserID(userID)
}

func (s *ItemService) FindById(itemID uint) (*models.Item, error) {
	item, err := s.repository.FindById(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create は所有者を常に認証済みユーザーに設定する。リクエストボディの値は使わない。
func (s *ItemService) Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error) {
	newItem := models.Item{
		Name:        createItemInput.Name,
		Description: createItemInput.Description,
		ImageURL:    createItemInput.ImageURL,
		Price:       *createItemInput.Price,
		UserID:      userID,
	}
	return s.repository.Create(newItem)
}

func (s *ItemService) Update(itemID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}

	if updateItemInput.Name != nil {
		targetItem.Name = *updateItemInput.Name
	}
	if updateItemInput.Description != nil {
		targetItem.Description = *updateItemInput.Description
	}
	if updateItemInput.ImageURL != nil {
		targetItem.ImageURL = updateItemInput.ImageURL
	}
	if updateItemInput.Price != nil {
		targetItem.Price = *updateItemInput.Price
	}
	return s.repository.Update(*targetItem)
}

func (s *ItemService) Delete(itemID uint) error {
	err := s.repository.Delete(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
