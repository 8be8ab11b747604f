// Package identity persists the device's messenger identity and the global
// monotonic messenger counter in the local SQLite store.
package identity

import (
	"context"

	"github.com/sunyue-dev/time-exchange/internal/models"
)

// Store describes the identity persistence operations.
//
// Contract:
//   - Load returns (nil, nil) when no identity is stored or the stored value
//     cannot be decoded; a corrupted record is treated as "no identity".
//   - Save overwrites any prior identity.
//   - Clear removes the persisted identity; the counter is left untouched so
//     identity numbers stay globally monotonic on the device.
//   - NextID increments the persistent counter and returns the new value as a
//     zero-padded 4-digit decimal string (longer past 9999, never truncated).
type Store interface {
	Load(ctx context.Context) (*models.Identity, error)
	Save(ctx context.Context, id *models.Identity) error
	Clear(ctx context.Context) error
	NextID(ctx context.Context) (string, error)
}
