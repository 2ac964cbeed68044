package cart

import "context"

// Persistence stores cart documents keyed by cart session ID. Load returns
// (nil, nil) when no document exists; callers treat that as an empty cart.
type Persistence interface {
	Load(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, cartID string) error
}
