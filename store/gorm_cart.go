package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/221FA04614/AuraShop-main/model"
)

type GormCartStore struct {
	DB *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore { return &GormCartStore{DB: db} }

func (s *GormCartStore) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.DB.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

func (s *GormCartStore) Find(ctx context.Context, userID, productID uint, size, color string) (*model.CartItem, error) {
	var item model.CartItem
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, productID, size, color).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormCartStore) Get(ctx context.Context, id, userID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormCartStore) Create(ctx context.Context, item *model.CartItem) error {
	err := s.DB.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormCartStore) Update(ctx context.Context, item *model.CartItem) error {
	return s.DB.WithContext(ctx).Save(item).Error
}

func (s *GormCartStore) Delete(ctx context.Context, id, userID uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormCartStore) Clear(ctx context.Context, userID uint) error {
	return s.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
