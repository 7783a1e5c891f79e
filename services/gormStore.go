package services

import (
	"context"
	"errors"

	"github.com/bellacucina/bella-cucina-api/models"
	"gorm.io/gorm"
)

// GormMenuCatalog reads menu items from the database.
type GormMenuCatalog struct {
	DB *gorm.DB
}

func (c GormMenuCatalog) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := c.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GormOrderStore persists orders. CreateOrder runs the header insert, the
// line-item inserts and the cart clear in a single transaction.
type GormOrderStore struct {
	DB *gorm.DB
}

func (s GormOrderStore) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (s GormOrderStore) CreateOrder(ctx context.Context, order *models.Order, clearCartUserID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if clearCartUserID != 0 {
			if err := tx.Where("user_id = ?", clearCartUserID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
