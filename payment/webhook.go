package payment

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const EventSessionCompleted = "checkout.session.completed"

var ErrInvalidSignature = errors.New("invalid webhook signature")

// CompletedSession is the provider-neutral view of a finished checkout
// session: the id, the amount actually paid, and the metadata echoed back
// from session creation.
type CompletedSession struct {
	ID          string
	AmountTotal int64 // minor currency units
	Metadata    map[string]string
}

type Event struct {
	Type    string
	Session CompletedSession
}

// ParseEvent verifies the notification against the shared signing secret
// and decodes the session payload for completion events. Verification
// failure returns ErrInvalidSignature; the caller must take no action.
func ParseEvent(payload []byte, sigHeader, secret string) (*Event, error) {
	// Accounts stay pinned to their own API version, so the event's version
	// rarely matches the one this library vendors. Signature verification is
	// the gate; the version label is informational.
	ev, err := webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &Event{Type: string(ev.Type)}
	if out.Type != EventSessionCompleted {
		return out, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("decode session payload: %w", err)
	}
	out.Session = CompletedSession{
		ID:          s.ID,
		AmountTotal: s.AmountTotal,
		Metadata:    s.Metadata,
	}
	return out, nil
}
