package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/221FA04614/AuraShop-main/model"
)

var testAddress = model.ShippingAddress{
	Name:    "Jane Doe",
	Phone:   "555-0100",
	Street:  "1 Main St",
	City:    "Springfield",
	State:   "IL",
	ZipCode: "62701",
	Country: "USA",
}

func TestIntentRoundTripCart(t *testing.T) {
	in := Intent{UserID: 42, Mode: ModeCart, Address: testAddress}

	md, err := in.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "cart-checkout", md["type"])
	assert.Equal(t, "42", md["userId"])
	assert.NotContains(t, md, "productId")

	out, err := DecodeIntent(md)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestIntentRoundTripQuick(t *testing.T) {
	in := Intent{
		UserID:      7,
		Mode:        ModeQuick,
		Address:     testAddress,
		ProductID:   3,
		ProductName: "Everyday Sneakers",
		Quantity:    2,
		Size:        "M",
		Color:       "Black",
	}

	md, err := in.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "quick-checkout", md["type"])
	assert.Equal(t, "3", md["productId"])
	assert.Equal(t, "2", md["quantity"])

	out, err := DecodeIntent(md)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeIntentRejectsBadMetadata(t *testing.T) {
	valid, err := Intent{UserID: 1, Mode: ModeCart, Address: testAddress}.Metadata()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(md map[string]string)
	}{
		{"missing userId", func(md map[string]string) { delete(md, "userId") }},
		{"non-numeric userId", func(md map[string]string) { md["userId"] = "abc" }},
		{"unknown mode", func(md map[string]string) { md["type"] = "gift-checkout" }},
		{"bad address json", func(md map[string]string) { md["shippingAddress"] = "{" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := make(map[string]string, len(valid))
			for k, v := range valid {
				md[k] = v
			}
			tt.mutate(md)

			_, err := DecodeIntent(md)
			assert.Error(t, err)
		})
	}
}

func TestDecodeIntentRejectsBadQuickFields(t *testing.T) {
	base := Intent{
		UserID: 1, Mode: ModeQuick, Address: testAddress,
		ProductID: 5, ProductName: "Wool Beanie", Quantity: 1,
	}

	md, err := base.Metadata()
	require.NoError(t, err)
	md["quantity"] = "0"
	_, err = DecodeIntent(md)
	assert.Error(t, err)

	md, err = base.Metadata()
	require.NoError(t, err)
	md["productId"] = ""
	_, err = DecodeIntent(md)
	assert.Error(t, err)
}
