package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/payment"
	"github.com/221FA04614/AuraShop-main/store"
)

// HandleSessionCompleted materializes an order for a finished payment
// session, exactly once per session id. A nil return acknowledges the
// notification; an error tells the provider to redeliver.
func (s *Service) HandleSessionCompleted(ctx context.Context, sess payment.CompletedSession) error {
	// Idempotency gate: a second delivery for a known session is a no-op.
	if _, err := s.orders.GetBySessionID(ctx, sess.ID); err == nil {
		log.Printf("order already exists for session %s", sess.ID)
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup order for session %s: %w", sess.ID, err)
	}

	intent, err := DecodeIntent(sess.Metadata)
	if err != nil {
		return fmt.Errorf("session %s: %w", sess.ID, err)
	}

	totalAmount := float64(sess.AmountTotal) / 100

	var items []model.OrderItem
	switch intent.Mode {
	case ModeQuick:
		// The amount actually paid is the source of truth for price, not
		// whatever the metadata said at session creation.
		items = []model.OrderItem{{
			ProductID:   intent.ProductID,
			ProductName: intent.ProductName,
			Quantity:    intent.Quantity,
			Price:       totalAmount / float64(intent.Quantity),
			Size:        orNA(intent.Size),
			Color:       orNA(intent.Color),
		}}
	case ModeCart:
		cartItems, err := s.carts.ListByUser(ctx, intent.UserID)
		if err != nil {
			return fmt.Errorf("load cart for user %d: %w", intent.UserID, err)
		}
		if len(cartItems) == 0 {
			return fmt.Errorf("user %d, session %s: %w", intent.UserID, sess.ID, ErrCartChanged)
		}
		for _, it := range cartItems {
			items = append(items, model.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.Product.Name,
				Quantity:    it.Quantity,
				Price:       it.Product.Price,
				Size:        it.Size,
				Color:       it.Color,
			})
		}
	}

	order := &model.Order{
		UserID:          intent.UserID,
		Items:           items,
		TotalAmount:     totalAmount,
		PaymentStatus:   "paid",
		ShippingAddress: datatypes.NewJSONType(intent.Address),
		StripeSessionID: sess.ID,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// A concurrent delivery won the insert race; its order stands.
			log.Printf("order already inserted for session %s", sess.ID)
			return nil
		}
		return fmt.Errorf("create order for session %s: %w", sess.ID, err)
	}

	if intent.Mode == ModeCart {
		// Not transactional with the order insert: a failure here leaves
		// the cart stale, and the order remains the source of truth.
		if err := s.carts.Clear(ctx, intent.UserID); err != nil {
			log.Printf("clear cart for user %d: %v", intent.UserID, err)
		}
	}

	s.events.OrderCreated(order)
	return nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
