package store

import (
	"context"
	"errors"

	"github.com/221FA04614/AuraShop-main/model"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write,
	// e.g. a second order for the same payment session.
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
}

type ProductStore interface {
	List(ctx context.Context, category string, featuredOnly bool) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *model.Product) error
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type CartStore interface {
	// ListByUser returns the user's items with product data populated.
	ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	Find(ctx context.Context, userID, productID uint, size, color string) (*model.CartItem, error)
	Get(ctx context.Context, id, userID uint) (*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	Update(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id, userID uint) error
	Clear(ctx context.Context, userID uint) error
}

type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	Get(ctx context.Context, id, userID uint) (*model.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error)
}
