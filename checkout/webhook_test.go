package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/payment"
	"github.com/221FA04614/AuraShop-main/store"
)

func completedCartSession(t *testing.T, userID uint, sessionID string, amountTotal int64) payment.CompletedSession {
	t.Helper()
	md, err := Intent{UserID: userID, Mode: ModeCart, Address: testAddress}.Metadata()
	require.NoError(t, err)
	return payment.CompletedSession{ID: sessionID, AmountTotal: amountTotal, Metadata: md}
}

func TestHandleSessionCompletedCartPath(t *testing.T) {
	f := newFixture()
	a := f.addProduct(t, "ProductA", 10.00, 10)
	b := f.addProduct(t, "ProductB", 25.00, 10)
	f.addCartItem(t, 1, a, 2)
	f.addCartItem(t, 1, b, 1)

	sess := completedCartSession(t, 1, "cs_done_1", 4500)
	require.NoError(t, f.svc.HandleSessionCompleted(context.Background(), sess))

	order, err := f.orders.GetBySessionID(context.Background(), "cs_done_1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, "paid", order.PaymentStatus)
	assert.Equal(t, 45.00, order.TotalAmount)
	assert.Equal(t, testAddress, order.ShippingAddress.Data())

	require.Len(t, order.Items, 2)
	assert.Equal(t, model.OrderItem{
		ProductID: a.ID, ProductName: "ProductA", Quantity: 2, Price: 10.00, Size: "M", Color: "Black",
	}, order.Items[0])
	assert.Equal(t, model.OrderItem{
		ProductID: b.ID, ProductName: "ProductB", Quantity: 1, Price: 25.00, Size: "M", Color: "Black",
	}, order.Items[1])

	items, err := f.carts.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items, "cart must be cleared after the order is materialized")

	require.Len(t, f.events.orders, 1)
	assert.Equal(t, order.StripeSessionID, f.events.orders[0].StripeSessionID)
}

func TestHandleSessionCompletedIsIdempotent(t *testing.T) {
	f := newFixture()
	p := f.addProduct(t, "ProductA", 10.00, 10)
	f.addCartItem(t, 1, p, 1)

	sess := completedCartSession(t, 1, "cs_dup", 1000)
	require.NoError(t, f.svc.HandleSessionCompleted(context.Background(), sess))

	// Redeliveries of the same session acknowledge without a second order,
	// even though the cart is now empty.
	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.HandleSessionCompleted(context.Background(), sess))
	}
	assert.Equal(t, 1, f.orders.Count())
	assert.Len(t, f.events.orders, 1)
}

// duplicateOnCreateStore simulates the check-then-insert race: the lookup
// misses but the unique session index rejects the insert because a
// concurrent delivery got there first.
type duplicateOnCreateStore struct {
	store.OrderStore
}

func (s *duplicateOnCreateStore) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	return nil, store.ErrNotFound
}

func (s *duplicateOnCreateStore) Create(ctx context.Context, o *model.Order) error {
	return store.ErrDuplicate
}

func TestHandleSessionCompletedTreatsInsertRaceAsProcessed(t *testing.T) {
	f := newFixture()
	p := f.addProduct(t, "ProductA", 10.00, 10)
	f.addCartItem(t, 1, p, 1)

	svc := NewService(f.products, f.carts, &duplicateOnCreateStore{}, f.sessions, f.events, "http://localhost:3000")
	err := svc.HandleSessionCompleted(context.Background(), completedCartSession(t, 1, "cs_race", 1000))
	assert.NoError(t, err, "losing the insert race is an idempotent no-op")
}

func TestHandleSessionCompletedQuickPathDerivesPriceFromAmountPaid(t *testing.T) {
	f := newFixture()

	md, err := Intent{
		UserID: 2, Mode: ModeQuick, Address: testAddress,
		ProductID: 9, ProductName: "Everyday Sneakers", Quantity: 3, Size: "L", Color: "White",
	}.Metadata()
	require.NoError(t, err)

	// The catalog price may have changed since session creation; the paid
	// amount wins: 30.00 / 3 = 10.00 per unit.
	sess := payment.CompletedSession{ID: "cs_quick", AmountTotal: 3000, Metadata: md}
	require.NoError(t, f.svc.HandleSessionCompleted(context.Background(), sess))

	order, err := f.orders.GetBySessionID(context.Background(), "cs_quick")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 10.00, order.Items[0].Price)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "Everyday Sneakers", order.Items[0].ProductName)
	assert.Equal(t, 30.00, order.TotalAmount)
}

func TestHandleSessionCompletedQuickPathDefaultsVariant(t *testing.T) {
	f := newFixture()

	md, err := Intent{
		UserID: 2, Mode: ModeQuick, Address: testAddress,
		ProductID: 9, ProductName: "Canvas Tote Bag", Quantity: 1,
	}.Metadata()
	require.NoError(t, err)

	sess := payment.CompletedSession{ID: "cs_novariant", AmountTotal: 2400, Metadata: md}
	require.NoError(t, f.svc.HandleSessionCompleted(context.Background(), sess))

	order, err := f.orders.GetBySessionID(context.Background(), "cs_novariant")
	require.NoError(t, err)
	assert.Equal(t, "N/A", order.Items[0].Size)
	assert.Equal(t, "N/A", order.Items[0].Color)
}

func TestHandleSessionCompletedFailsWhenCartBecameEmpty(t *testing.T) {
	f := newFixture()

	err := f.svc.HandleSessionCompleted(context.Background(), completedCartSession(t, 1, "cs_gone", 4500))
	assert.ErrorIs(t, err, ErrCartChanged, "payment without a cart must surface, not vanish")
	assert.Equal(t, 0, f.orders.Count())
	assert.Empty(t, f.events.orders)
}

func TestHandleSessionCompletedRejectsBadMetadata(t *testing.T) {
	f := newFixture()

	sess := payment.CompletedSession{
		ID:          "cs_bad_md",
		AmountTotal: 1000,
		Metadata:    map[string]string{"userId": "not-a-number", "type": ModeCart},
	}
	err := f.svc.HandleSessionCompleted(context.Background(), sess)
	assert.Error(t, err)
	assert.Equal(t, 0, f.orders.Count())
}
