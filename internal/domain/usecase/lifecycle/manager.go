package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// Manager owns the card status state machine and the expiration sweep.
// Every status change goes through CardStore.Mutate, so it takes the same
// per-card exclusive access as transfers do.
type Manager struct {
	cards        persistence.CardStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewManager creates a new lifecycle Manager
func NewManager(
	cards persistence.CardStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Manager {
	return &Manager{
		cards:        cards,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SetStatus applies an explicit transition. A card found past its expiry date is
// expired first; the requested change then fails unless it was EXPIRED itself.
func (m *Manager) SetStatus(ctx context.Context, cardID uint64, status entity.CardStatus) (*entity.Card, error) {
	now := m.timeProvider.Now()
	expired := false

	card, err := m.cards.Mutate(ctx, cardID, func(c *entity.Card) error {
		if c.Expire(now) {
			expired = true
			return nil
		}
		return c.TransitionTo(status, now)
	})
	if err != nil {
		m.logger.Warn("Card status change rejected", withFields(errs.LogFields(err), map[string]any{
			"card_id":          cardID,
			"requested_status": string(status),
		}))
		return nil, err
	}

	if expired {
		m.logger.Info("Card expired on status change", map[string]any{
			"card_id": cardID,
		})
		if status != entity.CardStatusExpired {
			return nil, errs.NewInvalidCardOperationError(cardID, string(card.Status), errs.ReasonExpired)
		}
		return card, nil
	}

	m.logger.Info("Card status changed", map[string]any{
		"card_id":  cardID,
		"owner_id": card.OwnerID,
		"status":   string(card.Status),
	})
	return card, nil
}

// SweepExpired expires every card whose expiry date is before the date of now.
// Running it again with the same now changes nothing.
func (m *Manager) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()

	ids, err := m.cards.ListExpirableIDs(ctx, entity.DateOf(now))
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		changed := false
		_, err := m.cards.Mutate(ctx, id, func(c *entity.Card) error {
			changed = c.Expire(now)
			return nil
		})
		if err != nil {
			if errors.Is(err, errs.ErrCardNotFound) {
				// deleted since listing
				continue
			}
			m.logger.Error("Failed to expire card", map[string]any{
				"card_id": id,
				"error":   err.Error(),
			})
			failures = append(failures, err)
			continue
		}
		if changed {
			expired++
		}
	}

	m.logger.Info("Expiration sweep finished", map[string]any{
		"candidates":  len(ids),
		"expired":     expired,
		"failures":    len(failures),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return expired, errors.Join(failures...)
}

// Sweep runs the expiration sweep for the current time
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	return m.SweepExpired(ctx, m.timeProvider.Now())
}

// AssertOperable checks that the card may take part in a transfer. A card past
// its expiry date is expired in the store before the error is returned.
func (m *Manager) AssertOperable(ctx context.Context, card *entity.Card, now time.Time) error {
	err := card.CheckOperable(now)
	if err == nil {
		return nil
	}

	if errs.IsExpiredCardError(err) && card.Status != entity.CardStatusExpired {
		if updated, expireErr := m.Expire(ctx, card.ID, now); expireErr != nil {
			m.logger.Error("Lazy expiration failed", map[string]any{
				"card_id": card.ID,
				"error":   expireErr.Error(),
			})
		} else {
			card.Status = updated.Status
			card.UpdatedAt = updated.UpdatedAt
		}
	}
	return err
}

// Expire moves the card to EXPIRED if its expiry date has passed
func (m *Manager) Expire(ctx context.Context, cardID uint64, now time.Time) (*entity.Card, error) {
	changed := false
	card, err := m.cards.Mutate(ctx, cardID, func(c *entity.Card) error {
		changed = c.Expire(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		m.logger.Info("Card expired", map[string]any{
			"card_id":     cardID,
			"owner_id":    card.OwnerID,
			"expiry_date": card.ExpiryDate.Format(time.DateOnly),
		})
	}
	return card, nil
}

func withFields(base map[string]any, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
