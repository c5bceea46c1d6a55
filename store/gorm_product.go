package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/221FA04614/AuraShop-main/model"
)

type GormProductStore struct {
	DB *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore { return &GormProductStore{DB: db} }

func (s *GormProductStore) List(ctx context.Context, category string, featuredOnly bool) ([]model.Product, error) {
	q := s.DB.WithContext(ctx).Order("id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	} else if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	var products []model.Product
	return products, q.Find(&products).Error
}

func (s *GormProductStore) Get(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := s.DB.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormProductStore) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.DB.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").Order("category asc").Pluck("category", &categories).Error
	return categories, err
}

func (s *GormProductStore) Create(ctx context.Context, p *model.Product) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormProductStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (s *GormProductStore) Search(ctx context.Context, query string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + query + "%"
	err := s.DB.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id asc").Find(&products).Error
	return products, err
}
