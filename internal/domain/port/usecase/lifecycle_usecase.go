package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// LifecycleUseCase owns the ACTIVE/BLOCKED/EXPIRED state machine
type LifecycleUseCase interface {
	// SetStatus applies an explicit transition. EXPIRED cards never leave EXPIRED.
	SetStatus(ctx context.Context, cardID uint64, status entity.CardStatus) (*entity.Card, error)

	// SweepExpired expires every card whose expiry date is before the date of now.
	// It returns the number of cards it changed.
	SweepExpired(ctx context.Context, now time.Time) (int, error)

	// Sweep runs SweepExpired with the current time
	Sweep(ctx context.Context) (int, error)

	// AssertOperable fails with InvalidCardOperation unless the card is ACTIVE and
	// not past its expiry date. A card found past its expiry is expired in the store
	// before the error is returned.
	AssertOperable(ctx context.Context, card *entity.Card, now time.Time) error

	// Expire moves the card to EXPIRED if its expiry date has passed
	Expire(ctx context.Context, cardID uint64, now time.Time) (*entity.Card, error)
}
