package transfer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/memstore"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
)

var today = time.Date(2025, 4, 20, 14, 0, 0, 0, time.UTC)

type fixture struct {
	store     *memstore.Store
	engine    *Engine
	lifecycle *lifecycle.Manager
	owner     uint64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(today).Maybe()

	var seq atomic.Int64
	ids := mockcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID().RunAndReturn(func() string {
		return fmt.Sprintf("tr-%d", seq.Add(1))
	}).Maybe()

	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}

	store := memstore.New()
	manager := lifecycle.NewManager(store.Cards(), tp, log)
	engine := NewEngine(store.Cards(), store.Transfers(), manager, ids, tp, log)

	return &fixture{store: store, engine: engine, lifecycle: manager, owner: 1}
}

func (f *fixture) issue(t *testing.T, ownerID uint64, number string, balance int64) *entity.Card {
	t.Helper()
	card, err := entity.NewCard(ownerID, number, "Holder", today.AddDate(1, 0, 0), balance, today)
	require.NoError(t, err)
	require.NoError(t, f.store.Cards().Create(context.Background(), card))
	return card
}

func (f *fixture) balance(t *testing.T, id uint64) int64 {
	t.Helper()
	card, err := f.store.Cards().GetByID(context.Background(), id)
	require.NoError(t, err)
	return card.Balance()
}

func TestEngine_ExampleScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, f.owner, "4000000000000001", 100000)
	b := f.issue(t, f.owner, "4000000000000002", 50000)

	result, err := f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: f.owner, Amount: 20000})
	require.NoError(t, err)
	assert.Equal(t, int64(80000), result.Source.Balance())
	assert.Equal(t, int64(70000), result.Destination.Balance())
	assert.Equal(t, "tr-1", result.Transfer.ID)

	_, err = f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: f.owner, Amount: 80100})
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.Equal(t, int64(80000), f.balance(t, a.ID))
	assert.Equal(t, int64(70000), f.balance(t, b.ID))

	_, err = f.store.Cards().Mutate(ctx, a.ID, func(c *entity.Card) error {
		c.ExpiryDate = entity.DateOf(today.AddDate(0, 0, -1))
		return nil
	})
	require.NoError(t, err)

	expired, err := f.lifecycle.SweepExpired(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	card, _ := f.store.Cards().GetByID(ctx, a.ID)
	assert.Equal(t, entity.CardStatusExpired, card.Status)

	_, err = f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: f.owner, Amount: 1000})
	assert.ErrorIs(t, err, errs.ErrInvalidCardOperation)
}

func TestEngine_Preconditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, 1, "4000000000000001", 1000)
	b := f.issue(t, 1, "4000000000000002", 1000)
	foreign := f.issue(t, 2, "4000000000000003", 1000)

	testCases := []struct {
		name     string
		cmd      entity.TransferCommand
		expected error
	}{
		{"Zero amount", entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1}, errs.ErrNonPositiveAmount},
		{"Self transfer", entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: a.ID, OwnerID: 1, Amount: 1}, errs.ErrSelfTransfer},
		{"Missing owner", entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, Amount: 1}, errs.ErrInvalidRequest},
		{"Unknown card", entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: 999, OwnerID: 1, Amount: 1}, errs.ErrCardNotFound},
		{"Cross owner destination", entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: foreign.ID, OwnerID: 1, Amount: 1}, errs.ErrCardNotFound},
		{"Cross owner source", entity.TransferCommand{SourceCardID: foreign.ID, DestinationCardID: a.ID, OwnerID: 1, Amount: 1}, errs.ErrCardNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.engine.Transfer(ctx, tc.cmd)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	assert.Equal(t, int64(1000), f.balance(t, a.ID))
	assert.Equal(t, int64(1000), f.balance(t, foreign.ID))
}

func TestEngine_NonActiveCards(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocked destination", func(t *testing.T) {
		f := newFixture(t)
		a := f.issue(t, 1, "4000000000000001", 1000)
		b := f.issue(t, 1, "4000000000000002", 0)
		_, err := f.lifecycle.SetStatus(ctx, b.ID, entity.CardStatusBlocked)
		require.NoError(t, err)

		_, err = f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: 10})
		assert.ErrorIs(t, err, errs.ErrInvalidCardOperation)
		assert.Equal(t, int64(1000), f.balance(t, a.ID))
	})

	t.Run("Lapsed card is expired lazily", func(t *testing.T) {
		f := newFixture(t)
		a := f.issue(t, 1, "4000000000000001", 1000)
		b := f.issue(t, 1, "4000000000000002", 0)
		_, err := f.store.Cards().Mutate(ctx, a.ID, func(c *entity.Card) error {
			c.ExpiryDate = entity.DateOf(today.AddDate(0, 0, -1))
			return nil
		})
		require.NoError(t, err)

		_, err = f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: 10})
		assert.True(t, errs.IsExpiredCardError(err))

		card, _ := f.store.Cards().GetByID(ctx, a.ID)
		assert.Equal(t, entity.CardStatusExpired, card.Status)
	})

	t.Run("Card expiring today still transfers", func(t *testing.T) {
		f := newFixture(t)
		a := f.issue(t, 1, "4000000000000001", 1000)
		b := f.issue(t, 1, "4000000000000002", 0)
		_, err := f.store.Cards().Mutate(ctx, a.ID, func(c *entity.Card) error {
			c.ExpiryDate = entity.DateOf(today)
			return nil
		})
		require.NoError(t, err)

		_, err = f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: 10})
		assert.NoError(t, err)
	})
}

func TestEngine_Idempotency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, 1, "4000000000000001", 1000)
	b := f.issue(t, 1, "4000000000000002", 0)
	cmd := entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: 100, RequestID: "req-1"}

	first, err := f.engine.Transfer(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := f.engine.Transfer(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Transfer.ID, second.Transfer.ID)
	assert.Equal(t, int64(900), f.balance(t, a.ID))

	changed := cmd
	changed.Amount = 200
	_, err = f.engine.Transfer(ctx, changed)
	assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReused)

	t.Run("Concurrent first uses move money once", func(t *testing.T) {
		again := cmd
		again.RequestID = "req-2"

		var wg sync.WaitGroup
		var replays atomic.Int32
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := f.engine.Transfer(ctx, again)
				if assert.NoError(t, err) && result.Replayed {
					replays.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(7), replays.Load())
		assert.Equal(t, int64(800), f.balance(t, a.ID))
	})
}

func TestEngine_ConcurrentConservation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, 1, "4000000000000001", 5000)
	b := f.issue(t, 1, "4000000000000002", 5000)
	c := f.issue(t, 1, "4000000000000003", 5000)
	cards := []uint64{a.ID, b.ID, c.ID}
	const total = 15000

	var wg sync.WaitGroup
	for i := 0; i < 300; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := cards[i%3]
			dst := cards[(i+1+i%2)%3]
			if src == dst {
				return
			}
			_, err := f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: src, DestinationCardID: dst, OwnerID: 1, Amount: int64(100 + i%7*50)})
			if err != nil {
				assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
			}
		}(i)
	}

	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()
	select {
	case <-finished:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent transfers did not finish")
	}

	sum := int64(0)
	for _, id := range cards {
		balance := f.balance(t, id)
		assert.GreaterOrEqual(t, balance, int64(0))
		sum += balance
	}
	assert.Equal(t, int64(total), sum)
}

func TestEngine_SweepRacesTransfers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, 1, "4000000000000001", 100000)
	b := f.issue(t, 1, "4000000000000002", 100000)
	_, err := f.store.Cards().Mutate(ctx, a.ID, func(c *entity.Card) error {
		c.ExpiryDate = entity.DateOf(today.AddDate(0, 0, -1))
		return nil
	})
	require.NoError(t, err)

	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.lifecycle.SweepExpired(ctx, today)
			assert.NoError(t, err)
		}()
		go func(i int) {
			defer wg.Done()
			cmd := entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: 100}
			if i%2 == 1 {
				cmd.SourceCardID, cmd.DestinationCardID = b.ID, a.ID
			}
			_, err := f.engine.Transfer(ctx, cmd)
			if err == nil {
				succeeded.Add(1)
				return
			}
			assert.True(t, errs.IsExpiredCardError(err), "unexpected error: %v", err)
		}(i)
	}

	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()
	select {
	case <-finished:
	case <-time.After(10 * time.Second):
		t.Fatal("sweep and transfers did not finish")
	}

	assert.Zero(t, succeeded.Load())
	card, err := f.store.Cards().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusExpired, card.Status)
	assert.Equal(t, int64(100000), f.balance(t, a.ID))
	assert.Equal(t, int64(100000), f.balance(t, b.ID))
}

func TestEngine_History(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.issue(t, 1, "4000000000000001", 1000)
	b := f.issue(t, 1, "4000000000000002", 1000)

	for i := 1; i <= 3; i++ {
		_, err := f.engine.Transfer(ctx, entity.TransferCommand{SourceCardID: a.ID, DestinationCardID: b.ID, OwnerID: 1, Amount: int64(i)})
		require.NoError(t, err)
	}

	page, err := f.engine.History(ctx, 1, entity.PageRequest{Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].Amount, "newest first")

	other, err := f.engine.History(ctx, 2, entity.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
