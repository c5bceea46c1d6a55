package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/221FA04614/AuraShop-main/model"
)

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore { return &GormUserStore{DB: db} }

func (s *GormUserStore) Create(ctx context.Context, u *model.User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := s.DB.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) Update(ctx context.Context, u *model.User) error {
	return s.DB.WithContext(ctx).Save(u).Error
}
