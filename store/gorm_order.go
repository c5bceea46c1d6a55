package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/221FA04614/AuraShop-main/model"
)

type GormOrderStore struct {
	DB *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore { return &GormOrderStore{DB: db} }

func (s *GormOrderStore) Create(ctx context.Context, o *model.Order) error {
	err := s.DB.WithContext(ctx).Create(o).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormOrderStore) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (s *GormOrderStore) Get(ctx context.Context, id, userID uint) (*model.Order, error) {
	var o model.Order
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *GormOrderStore) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	var o model.Order
	err := s.DB.WithContext(ctx).
		Where("stripe_session_id = ?", sessionID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
