package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/card-ledger/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}
	return log
}

func newFixedClock(t *testing.T) *mockcore.MockTimeProvider {
	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	return tp
}

// mutateInPlace emulates CardStore.Mutate against a single stored card
func mutateInPlace(stored *entity.Card) func(context.Context, uint64, persistence.CardMutation) (*entity.Card, error) {
	return func(_ context.Context, _ uint64, fn persistence.CardMutation) (*entity.Card, error) {
		working := stored.Clone()
		if err := fn(working); err != nil {
			return nil, err
		}
		*stored = *working
		return working.Clone(), nil
	}
}

func cardWithExpiry(id uint64, status entity.CardStatus, expiry time.Time) *entity.Card {
	return entity.RestoreCard(id, 1, "4000000000000001", "Holder", expiry, status, 10000, fixedNow, fixedNow)
}

func TestManager_SetStatus(t *testing.T) {
	ctx := context.Background()
	nextYear := fixedNow.AddDate(1, 0, 0)
	yesterday := fixedNow.AddDate(0, 0, -1)

	t.Run("Blocks an active card", func(t *testing.T) {
		stored := cardWithExpiry(1, entity.CardStatusActive, nextYear)
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(stored))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		card, err := manager.SetStatus(ctx, 1, entity.CardStatusBlocked)

		require.NoError(t, err)
		assert.Equal(t, entity.CardStatusBlocked, card.Status)
		assert.Equal(t, entity.CardStatusBlocked, stored.Status)
	})

	t.Run("Expired card stays expired", func(t *testing.T) {
		stored := cardWithExpiry(1, entity.CardStatusExpired, yesterday)
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(stored))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		_, err := manager.SetStatus(ctx, 1, entity.CardStatusActive)

		assert.ErrorIs(t, err, errs.ErrInvalidCardOperation)
		assert.Equal(t, entity.CardStatusExpired, stored.Status)
	})

	t.Run("Past expiry is persisted before rejecting", func(t *testing.T) {
		stored := cardWithExpiry(1, entity.CardStatusActive, yesterday)
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(stored))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		_, err := manager.SetStatus(ctx, 1, entity.CardStatusBlocked)

		assert.True(t, errs.IsExpiredCardError(err))
		assert.Equal(t, entity.CardStatusExpired, stored.Status)
	})

	t.Run("Explicit expiry after the date passed", func(t *testing.T) {
		stored := cardWithExpiry(1, entity.CardStatusBlocked, yesterday)
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(stored))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		card, err := manager.SetStatus(ctx, 1, entity.CardStatusExpired)

		require.NoError(t, err)
		assert.Equal(t, entity.CardStatusExpired, card.Status)
	})

	t.Run("Unknown card", func(t *testing.T) {
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(9), mock.Anything).Return(nil, errs.ErrCardNotFound)

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		_, err := manager.SetStatus(ctx, 9, entity.CardStatusBlocked)

		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})
}

func TestManager_SweepExpired(t *testing.T) {
	ctx := context.Background()
	yesterday := fixedNow.AddDate(0, 0, -1)

	t.Run("Expires candidates and is idempotent", func(t *testing.T) {
		first := cardWithExpiry(1, entity.CardStatusActive, yesterday)
		second := cardWithExpiry(2, entity.CardStatusBlocked, yesterday)

		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().ListExpirableIDs(ctx, entity.DateOf(fixedNow)).Return([]uint64{1, 2}, nil).Once()
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(first))
		store.EXPECT().Mutate(ctx, uint64(2), mock.Anything).RunAndReturn(mutateInPlace(second))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		count, err := manager.SweepExpired(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, entity.CardStatusExpired, first.Status)
		assert.Equal(t, entity.CardStatusExpired, second.Status)

		store.EXPECT().ListExpirableIDs(ctx, entity.DateOf(fixedNow)).Return(nil, nil).Once()
		count, err = manager.SweepExpired(ctx, fixedNow)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Card that stopped being eligible is not counted", func(t *testing.T) {
		already := cardWithExpiry(1, entity.CardStatusExpired, yesterday)

		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().ListExpirableIDs(ctx, mock.Anything).Return([]uint64{1, 2}, nil)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(already))
		store.EXPECT().Mutate(ctx, uint64(2), mock.Anything).Return(nil, errs.ErrCardNotFound)

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		count, err := manager.SweepExpired(ctx, fixedNow)

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Store failures are reported after the batch", func(t *testing.T) {
		ok := cardWithExpiry(2, entity.CardStatusActive, yesterday)
		dbErr := errors.New("connection reset")

		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().ListExpirableIDs(ctx, mock.Anything).Return([]uint64{1, 2}, nil)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).Return(nil, dbErr)
		store.EXPECT().Mutate(ctx, uint64(2), mock.Anything).RunAndReturn(mutateInPlace(ok))

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		count, err := manager.SweepExpired(ctx, fixedNow)

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, count)
	})
}

func TestManager_Sweep(t *testing.T) {
	ctx := context.Background()
	store := mockpersistence.NewMockCardStore(t)
	store.EXPECT().ListExpirableIDs(ctx, entity.DateOf(fixedNow)).Return([]uint64{}, nil)

	manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
	count, err := manager.Sweep(ctx)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestManager_AssertOperable(t *testing.T) {
	ctx := context.Background()

	t.Run("Active card passes without store access", func(t *testing.T) {
		store := mockpersistence.NewMockCardStore(t)
		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))

		card := cardWithExpiry(1, entity.CardStatusActive, fixedNow)
		assert.NoError(t, manager.AssertOperable(ctx, card, fixedNow))
	})

	t.Run("Blocked card fails without expiring", func(t *testing.T) {
		store := mockpersistence.NewMockCardStore(t)
		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))

		card := cardWithExpiry(1, entity.CardStatusBlocked, fixedNow.AddDate(1, 0, 0))
		err := manager.AssertOperable(ctx, card, fixedNow)
		assert.ErrorIs(t, err, errs.ErrInvalidCardOperation)
		assert.False(t, errs.IsExpiredCardError(err))
	})

	t.Run("Lapsed card is expired in the store", func(t *testing.T) {
		stored := cardWithExpiry(1, entity.CardStatusActive, fixedNow.AddDate(0, 0, -1))
		store := mockpersistence.NewMockCardStore(t)
		store.EXPECT().Mutate(ctx, uint64(1), mock.Anything).RunAndReturn(mutateInPlace(stored)).Once()

		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))
		snapshot := stored.Clone()
		err := manager.AssertOperable(ctx, snapshot, fixedNow)

		assert.True(t, errs.IsExpiredCardError(err))
		assert.Equal(t, entity.CardStatusExpired, stored.Status)
		assert.Equal(t, entity.CardStatusExpired, snapshot.Status)
	})

	t.Run("Already expired card needs no write", func(t *testing.T) {
		store := mockpersistence.NewMockCardStore(t)
		manager := NewManager(store, newFixedClock(t), newQuietLogger(t))

		card := cardWithExpiry(1, entity.CardStatusExpired, fixedNow.AddDate(0, 0, -3))
		assert.ErrorIs(t, manager.AssertOperable(ctx, card, fixedNow), errs.ErrInvalidCardOperation)
	})
}
