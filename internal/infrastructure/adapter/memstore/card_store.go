package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// CardStore implements persistence.CardStore in memory
type CardStore struct {
	s *Store
}

var _ persistence.CardStore = (*CardStore)(nil)

// Create stores a new card and assigns its ID
func (c *CardStore) Create(ctx context.Context, card *entity.Card) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, taken := c.s.cardNumbers[card.Number]; taken {
		return errs.ErrDuplicateCardNumber
	}
	if card.Balance() < 0 {
		return errs.ErrNegativeBalance
	}

	c.s.nextCardID++
	card.ID = c.s.nextCardID
	c.s.cards[card.ID] = card.Clone()
	c.s.cardNumbers[card.Number] = card.ID
	return nil
}

// GetByID returns a snapshot of the card
func (c *CardStore) GetByID(_ context.Context, id uint64) (*entity.Card, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	card, ok := c.s.cards[id]
	if !ok {
		return nil, errs.ErrCardNotFound
	}
	return card.Clone(), nil
}

// GetByIDForOwner returns the card only when it belongs to ownerID
func (c *CardStore) GetByIDForOwner(ctx context.Context, id, ownerID uint64) (*entity.Card, error) {
	card, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !card.IsOwnedBy(ownerID) {
		return nil, errs.ErrCardNotFound
	}
	return card, nil
}

// ListByOwner returns one page of the owner's cards ordered by id
func (c *CardStore) ListByOwner(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	return c.Filter(ctx, entity.CardFilter{}.WithOwner(ownerID), page)
}

// ListAllByOwner returns every card of the owner ordered by id
func (c *CardStore) ListAllByOwner(_ context.Context, ownerID uint64) ([]*entity.Card, error) {
	return c.collect(entity.CardFilter{}.WithOwner(ownerID)), nil
}

// ListAll returns every card ordered by id
func (c *CardStore) ListAll(_ context.Context) ([]*entity.Card, error) {
	return c.collect(entity.CardFilter{}), nil
}

// Filter returns one page of matching cards ordered by id
func (c *CardStore) Filter(_ context.Context, filter entity.CardFilter, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	page = page.Normalize(entity.DefaultPageSize, entity.MaxPageSize)
	matched := c.collect(filter)

	total := int64(len(matched))
	start := page.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return entity.NewPage(matched[start:end], page, total), nil
}

func (c *CardStore) collect(filter entity.CardFilter) []*entity.Card {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	out := make([]*entity.Card, 0)
	for _, card := range c.s.cards {
		if filter.Matches(card) {
			out = append(out, card.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ExistsByNumber reports whether any card carries the number
func (c *CardStore) ExistsByNumber(_ context.Context, number string) (bool, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	_, ok := c.s.cardNumbers[number]
	return ok, nil
}

// ExistsByNumberForOwner reports whether the owner holds a card with the number
func (c *CardStore) ExistsByNumberForOwner(_ context.Context, number string, ownerID uint64) (bool, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	id, ok := c.s.cardNumbers[number]
	if !ok {
		return false, nil
	}
	return c.s.cards[id].OwnerID == ownerID, nil
}

// ListExpirableIDs returns ids of non-EXPIRED cards whose expiry date is before today
func (c *CardStore) ListExpirableIDs(_ context.Context, today time.Time) ([]uint64, error) {
	today = entity.DateOf(today)

	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	ids := make([]uint64, 0)
	for id, card := range c.s.cards {
		if card.Status != entity.CardStatusExpired && card.ExpiryDate.Before(today) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Mutate applies fn to a copy of the card under its lock and stores the result
func (c *CardStore) Mutate(ctx context.Context, id uint64, fn persistence.CardMutation) (*entity.Card, error) {
	lock := c.s.lockFor(id)
	if err := lock.acquire(ctx); err != nil {
		return nil, errs.ErrCardLocked
	}
	defer lock.release()

	working, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(working); err != nil {
		return nil, err
	}
	if working.Balance() < 0 {
		return nil, errs.ErrNegativeBalance
	}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.cards[id]; !ok {
		return nil, errs.ErrCardNotFound
	}
	c.s.cards[id] = working.Clone()
	return working, nil
}

// MutatePair locks both cards in ascending id order, applies fn and stores both
// results together with any writes fn made through its context
func (c *CardStore) MutatePair(ctx context.Context, firstID, secondID uint64, fn persistence.CardPairMutation) (*entity.Card, *entity.Card, error) {
	if firstID == secondID {
		return nil, nil, errs.ErrSelfTransfer
	}

	low, high := firstID, secondID
	if low > high {
		low, high = high, low
	}

	lowLock := c.s.lockFor(low)
	if err := lowLock.acquire(ctx); err != nil {
		return nil, nil, errs.ErrCardLocked
	}
	defer lowLock.release()

	highLock := c.s.lockFor(high)
	if err := highLock.acquire(ctx); err != nil {
		return nil, nil, errs.ErrCardLocked
	}
	defer highLock.release()

	first, err := c.GetByID(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := c.GetByID(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}

	tx := &txState{}
	if err := fn(context.WithValue(ctx, txKey{}, tx), first, second); err != nil {
		return nil, nil, err
	}
	if first.Balance() < 0 || second.Balance() < 0 {
		return nil, nil, errs.ErrNegativeBalance
	}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	_, firstOK := c.s.cards[firstID]
	_, secondOK := c.s.cards[secondID]
	if !firstOK || !secondOK {
		return nil, nil, errs.ErrCardNotFound
	}
	if err := commitLocked(tx.drain()); err != nil {
		return nil, nil, err
	}
	c.s.cards[firstID] = first.Clone()
	c.s.cards[secondID] = second.Clone()
	return first, second, nil
}

// Delete removes the card
func (c *CardStore) Delete(ctx context.Context, id uint64) error {
	return c.s.run(ctx, stagedOp{
		check: func() error {
			if _, ok := c.s.cards[id]; !ok {
				return errs.ErrCardNotFound
			}
			return nil
		},
		apply: func() {
			c.s.removeCard(id)
		},
	})
}

// DeleteByOwner removes every card of the owner
func (c *CardStore) DeleteByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	owned := c.collect(entity.CardFilter{}.WithOwner(ownerID))

	err := c.s.run(ctx, stagedOp{
		apply: func() {
			for id, card := range c.s.cards {
				if card.OwnerID == ownerID {
					c.s.removeCard(id)
				}
			}
		},
	})
	if err != nil {
		return 0, err
	}
	return int64(len(owned)), nil
}

// Ping always succeeds
func (c *CardStore) Ping(context.Context) error {
	return nil
}

// removeCard requires mu held for writing
func (s *Store) removeCard(id uint64) {
	card, ok := s.cards[id]
	if !ok {
		return
	}
	delete(s.cardNumbers, card.Number)
	delete(s.cards, id)
	delete(s.cardLocks, id)
}
