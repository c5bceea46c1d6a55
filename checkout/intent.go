package checkout

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/221FA04614/AuraShop-main/model"
)

const (
	ModeCart  = "cart-checkout"
	ModeQuick = "quick-checkout"
)

// Intent is the correlation bundle attached to the payment session at
// creation time and read back when the completion notification arrives.
// It is the only way the asynchronous handler recovers what was being
// purchased, since the cart may have changed in between.
type Intent struct {
	UserID  uint
	Mode    string
	Address model.ShippingAddress

	// Quick-checkout only.
	ProductID   uint
	ProductName string
	Quantity    int
	Size        string
	Color       string
}

func (i Intent) Metadata() (map[string]string, error) {
	addr, err := json.Marshal(i.Address)
	if err != nil {
		return nil, fmt.Errorf("encode shipping address: %w", err)
	}
	md := map[string]string{
		"userId":          strconv.FormatUint(uint64(i.UserID), 10),
		"shippingAddress": string(addr),
		"type":            i.Mode,
	}
	if i.Mode == ModeQuick {
		md["productId"] = strconv.FormatUint(uint64(i.ProductID), 10)
		md["productName"] = i.ProductName
		md["quantity"] = strconv.Itoa(i.Quantity)
		md["size"] = i.Size
		md["color"] = i.Color
	}
	return md, nil
}

func DecodeIntent(md map[string]string) (Intent, error) {
	var in Intent

	uid, err := strconv.ParseUint(md["userId"], 10, 32)
	if err != nil {
		return in, fmt.Errorf("metadata userId %q: %w", md["userId"], err)
	}
	in.UserID = uint(uid)

	in.Mode = md["type"]
	if in.Mode != ModeCart && in.Mode != ModeQuick {
		return in, fmt.Errorf("metadata type %q is not a known checkout mode", md["type"])
	}

	if err := json.Unmarshal([]byte(md["shippingAddress"]), &in.Address); err != nil {
		return in, fmt.Errorf("metadata shippingAddress: %w", err)
	}

	if in.Mode == ModeQuick {
		pid, err := strconv.ParseUint(md["productId"], 10, 32)
		if err != nil {
			return in, fmt.Errorf("metadata productId %q: %w", md["productId"], err)
		}
		in.ProductID = uint(pid)
		in.ProductName = md["productName"]

		qty, err := strconv.Atoi(md["quantity"])
		if err != nil {
			return in, fmt.Errorf("metadata quantity %q: %w", md["quantity"], err)
		}
		if qty < 1 {
			return in, fmt.Errorf("metadata quantity %d must be positive", qty)
		}
		in.Quantity = qty
		in.Size = md["size"]
		in.Color = md["color"]
	}
	return in, nil
}
