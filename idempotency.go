package stripeapi

import (
	"github.com/google/uuid"
)

// NewIdempotencyKey returns a random key suitable for the Idempotency-Key
// header. The same key should be given when retrying a request so Stripe does
// not perform the operation twice.
func NewIdempotencyKey() string { return uuid.NewString() }
