package memstore

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

var storeNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func seedCard(t *testing.T, cards *CardStore, ownerID uint64, number string, balance int64) *entity.Card {
	t.Helper()
	card, err := entity.NewCard(ownerID, number, "Holder", storeNow.AddDate(1, 0, 0), balance, storeNow)
	require.NoError(t, err)
	require.NoError(t, cards.Create(context.Background(), card))
	return card
}

func TestCardStore_CreateAndRead(t *testing.T) {
	ctx := context.Background()
	cards := New().Cards()

	first := seedCard(t, cards, 1, "4000000000000001", 100)
	second := seedCard(t, cards, 2, "4000000000000002", 200)
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)

	t.Run("Duplicate number is rejected", func(t *testing.T) {
		dup, err := entity.NewCard(3, "4000000000000001", "Other", storeNow.AddDate(1, 0, 0), 0, storeNow)
		require.NoError(t, err)
		assert.ErrorIs(t, cards.Create(ctx, dup), errs.ErrDuplicateCardNumber)
	})

	t.Run("Owner scoping hides foreign cards", func(t *testing.T) {
		_, err := cards.GetByIDForOwner(ctx, second.ID, 1)
		assert.ErrorIs(t, err, errs.ErrCardNotFound)

		card, err := cards.GetByIDForOwner(ctx, first.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), card.Balance())
	})

	t.Run("Reads are snapshots", func(t *testing.T) {
		card, err := cards.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.NoError(t, card.Credit(5000, storeNow))

		again, err := cards.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), again.Balance())
	})

	t.Run("Existence checks", func(t *testing.T) {
		exists, err := cards.ExistsByNumber(ctx, "4000000000000002")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = cards.ExistsByNumberForOwner(ctx, "4000000000000002", 1)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCardStore_FilterAndPaging(t *testing.T) {
	ctx := context.Background()
	cards := New().Cards()
	for i := 1; i <= 5; i++ {
		seedCard(t, cards, 1, fmt.Sprintf("40000000000000%02d", i), int64(i*1000))
	}
	seedCard(t, cards, 2, "4000000000000099", 3000)

	page, err := cards.ListByOwner(ctx, 1, entity.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, uint64(3), page.Items[0].ID)

	low, high := int64(2000), int64(3000)
	filtered, err := cards.Filter(ctx, entity.CardFilter{MinBalance: &low, MaxBalance: &high}, entity.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), filtered.TotalItems)
	assert.Equal(t, []uint64{2, 3, 6}, cardIDs(filtered.Items))

	beyond, err := cards.ListByOwner(ctx, 1, entity.PageRequest{Page: 10, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)

	t.Run("Huge page index returns an empty page", func(t *testing.T) {
		assert.NotPanics(t, func() {
			huge, err := cards.Filter(ctx, entity.CardFilter{}, entity.PageRequest{Page: math.MaxInt64 / 10, Size: 20})
			require.NoError(t, err)
			assert.Empty(t, huge.Items)
			assert.Equal(t, int64(6), huge.TotalItems)
		})
		assert.NotPanics(t, func() {
			huge, err := New().Transfers().ListByOwner(ctx, 1, entity.PageRequest{Page: math.MaxInt64 / 10, Size: 20})
			require.NoError(t, err)
			assert.Empty(t, huge.Items)
		})
	})
}

func cardIDs(cards []*entity.Card) []uint64 {
	ids := make([]uint64, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCardStore_Mutate(t *testing.T) {
	ctx := context.Background()
	cards := New().Cards()
	card := seedCard(t, cards, 1, "4000000000000001", 100)

	t.Run("Error leaves the record untouched", func(t *testing.T) {
		_, err := cards.Mutate(ctx, card.ID, func(c *entity.Card) error {
			_ = c.Credit(50, storeNow)
			return errs.ErrInvalidCardOperation
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCardOperation)

		stored, _ := cards.GetByID(ctx, card.ID)
		assert.Equal(t, int64(100), stored.Balance())
	})

	t.Run("Negative result is rejected centrally", func(t *testing.T) {
		_, err := cards.Mutate(ctx, card.ID, func(c *entity.Card) error {
			*c = *entity.RestoreCard(c.ID, c.OwnerID, c.Number, c.HolderName, c.ExpiryDate, c.Status, -1, c.CreatedAt, c.UpdatedAt)
			return nil
		})
		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})

	t.Run("Unknown card", func(t *testing.T) {
		_, err := cards.Mutate(ctx, 404, func(*entity.Card) error { return nil })
		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})

	t.Run("Cancelled context while the card is held", func(t *testing.T) {
		lock := cards.s.lockFor(card.ID)
		require.NoError(t, lock.acquire(ctx))
		defer lock.release()

		short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := cards.Mutate(short, card.ID, func(*entity.Card) error { return nil })
		assert.ErrorIs(t, err, errs.ErrCardLocked)
	})
}

func TestCardStore_MutatePairConcurrentOppositeDirections(t *testing.T) {
	ctx := context.Background()
	cards := New().Cards()
	a := seedCard(t, cards, 1, "4000000000000001", 100000)
	b := seedCard(t, cards, 1, "4000000000000002", 50000)
	total := a.Balance() + b.Balance()

	move := func(from, to uint64, amount int64) {
		_, _, _ = cards.MutatePair(ctx, from, to, func(_ context.Context, src, dst *entity.Card) error {
			if err := src.Debit(amount, storeNow); err != nil {
				return err
			}
			return dst.Credit(amount, storeNow)
		})
	}

	var wg sync.WaitGroup
	var sawInvalid bool
	var mu sync.Mutex
	done := make(chan struct{})

	go func() {
		// concurrent reader: never sees money outside [0, total] or out of balance
		for {
			select {
			case <-done:
				return
			default:
			}
			all, _ := cards.ListAll(ctx)
			sum := int64(0)
			for _, c := range all {
				if c.Balance() < 0 {
					mu.Lock()
					sawInvalid = true
					mu.Unlock()
				}
				sum += c.Balance()
			}
			if sum != total {
				mu.Lock()
				sawInvalid = true
				mu.Unlock()
			}
		}
	}()

	for i := 0; i < 200; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); move(a.ID, b.ID, 700) }()
		go func() { defer wg.Done(); move(b.ID, a.ID, 500) }()
	}

	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()
	select {
	case <-finished:
	case <-time.After(10 * time.Second):
		t.Fatal("transfers in opposite directions deadlocked")
	}
	close(done)

	finalA, _ := cards.GetByID(ctx, a.ID)
	finalB, _ := cards.GetByID(ctx, b.ID)
	assert.Equal(t, total, finalA.Balance()+finalB.Balance())
	assert.GreaterOrEqual(t, finalA.Balance(), int64(0))
	assert.GreaterOrEqual(t, finalB.Balance(), int64(0))

	mu.Lock()
	assert.False(t, sawInvalid, "a reader observed a partial transfer")
	mu.Unlock()
}

func TestCardStore_MutatePairStagedWrites(t *testing.T) {
	ctx := context.Background()
	store := New()
	cards := store.Cards()
	transfers := store.Transfers()
	a := seedCard(t, cards, 1, "4000000000000001", 1000)
	b := seedCard(t, cards, 1, "4000000000000002", 0)

	record := &entity.Transfer{ID: "t1", RequestID: "r1", OwnerID: 1, SourceCardID: a.ID, DestinationCardID: b.ID, Amount: 10}
	_, _, err := cards.MutatePair(ctx, a.ID, b.ID, func(txCtx context.Context, src, dst *entity.Card) error {
		require.NoError(t, src.Debit(10, storeNow))
		require.NoError(t, dst.Credit(10, storeNow))
		return transfers.Create(txCtx, record)
	})
	require.NoError(t, err)

	t.Run("Duplicate request id aborts the whole unit", func(t *testing.T) {
		dup := *record
		dup.ID = "t2"
		_, _, err := cards.MutatePair(ctx, a.ID, b.ID, func(txCtx context.Context, src, dst *entity.Card) error {
			require.NoError(t, src.Debit(10, storeNow))
			require.NoError(t, dst.Credit(10, storeNow))
			return transfers.Create(txCtx, &dup)
		})
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReused)

		stored, _ := cards.GetByID(ctx, a.ID)
		assert.Equal(t, int64(990), stored.Balance())
	})

	t.Run("Record written by fn is visible after commit", func(t *testing.T) {
		found, err := transfers.GetByRequestID(ctx, 1, "r1")
		require.NoError(t, err)
		assert.Equal(t, "t1", found.ID)
	})

	t.Run("Failure after staging discards the record", func(t *testing.T) {
		_, _, err := cards.MutatePair(ctx, a.ID, b.ID, func(txCtx context.Context, src, dst *entity.Card) error {
			require.NoError(t, transfers.Create(txCtx, &entity.Transfer{ID: "t3", RequestID: "r3", OwnerID: 1}))
			return src.Debit(1_000_000, storeNow)
		})
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		_, err = transfers.GetByRequestID(ctx, 1, "r3")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCardStore_ListExpirableIDs(t *testing.T) {
	ctx := context.Background()
	cards := New().Cards()
	live := seedCard(t, cards, 1, "4000000000000001", 0)
	lapsed := seedCard(t, cards, 1, "4000000000000002", 0)

	_, err := cards.Mutate(ctx, lapsed.ID, func(c *entity.Card) error {
		c.ExpiryDate = entity.DateOf(storeNow.AddDate(0, 0, -1))
		return nil
	})
	require.NoError(t, err)

	ids, err := cards.ListExpirableIDs(ctx, storeNow)
	require.NoError(t, err)
	assert.Equal(t, []uint64{lapsed.ID}, ids)
	assert.NotContains(t, ids, live.ID)
}
