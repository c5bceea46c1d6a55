package events

import "github.com/221FA04614/AuraShop-main/model"

// Publisher fans out domain events. Publishing is best-effort: the order is
// already persisted by the time an event goes out, so delivery failures are
// logged, never surfaced to the request.
type Publisher interface {
	OrderCreated(o *model.Order)
	ProductCreated(p *model.Product)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) OrderCreated(*model.Order)     {}
func (Nop) ProductCreated(*model.Product) {}
