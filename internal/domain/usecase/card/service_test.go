package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/card-ledger/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/card-ledger/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

type serviceMocks struct {
	cards     *mockpersistence.MockCardStore
	users     *mockpersistence.MockUserRepository
	lifecycle *mockusecase.MockLifecycleUseCase
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		cards:     mockpersistence.NewMockCardStore(t),
		users:     mockpersistence.NewMockUserRepository(t),
		lifecycle: mockusecase.NewMockLifecycleUseCase(t),
	}

	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()

	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}

	return NewService(m.cards, m.users, m.lifecycle, tp, log, PagingPolicy{DefaultSize: 20, MaxSize: 100}), m
}

func validCommand() usecase.IssueCardCommand {
	return usecase.IssueCardCommand{
		OwnerID:        7,
		Number:         "4000123412341234",
		HolderName:     "Jane Doe",
		ExpiryDate:     fixedTime.AddDate(2, 0, 0),
		InitialBalance: 100000,
	}
}

func TestService_IssueCard(t *testing.T) {
	ctx := context.Background()

	t.Run("should issue an active card", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7}, nil)
		m.cards.EXPECT().ExistsByNumber(ctx, "4000123412341234").Return(false, nil)
		m.cards.EXPECT().ExistsByNumberForOwner(ctx, "4000123412341234", uint64(7)).Return(false, nil)
		m.cards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Card")).
			RunAndReturn(func(_ context.Context, c *entity.Card) error {
				c.ID = 42
				return nil
			})

		card, err := svc.IssueCard(ctx, validCommand())

		require.NoError(t, err)
		assert.Equal(t, uint64(42), card.ID)
		assert.Equal(t, entity.CardStatusActive, card.Status)
		assert.Equal(t, "**** **** **** 1234", card.MaskedNumber())
	})

	t.Run("should fail the global uniqueness check", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7}, nil)
		m.cards.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(true, nil)

		_, err := svc.IssueCard(ctx, validCommand())

		assert.ErrorIs(t, err, errs.ErrDuplicateCardNumber)
		assert.Equal(t, "global", errs.LogFields(err)["scope"])
	})

	t.Run("should fail the per-owner check independently", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7}, nil)
		m.cards.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(false, nil)
		m.cards.EXPECT().ExistsByNumberForOwner(ctx, mock.Anything, uint64(7)).Return(true, nil)

		_, err := svc.IssueCard(ctx, validCommand())

		assert.ErrorIs(t, err, errs.ErrDuplicateCardNumber)
		assert.Equal(t, "owner", errs.LogFields(err)["scope"])
	})

	t.Run("should map a unique index race to a duplicate", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7}, nil)
		m.cards.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(false, nil)
		m.cards.EXPECT().ExistsByNumberForOwner(ctx, mock.Anything, mock.Anything).Return(false, nil)
		m.cards.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateCardNumber)

		_, err := svc.IssueCard(ctx, validCommand())
		assert.ErrorIs(t, err, errs.ErrDuplicateCardNumber)
	})

	t.Run("should validate before touching the store", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(&entity.User{ID: 7}, nil)

		cmd := validCommand()
		cmd.ExpiryDate = fixedTime
		_, err := svc.IssueCard(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrInvalidExpiryDate)
	})

	t.Run("should reject unknown owners", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByID(ctx, uint64(7)).Return(nil, errs.ErrUserNotFound)

		_, err := svc.IssueCard(ctx, validCommand())
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestService_IssueCardForUsername(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)
	m.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, errs.ErrUserNotFound)

	_, err := svc.IssueCardForUsername(ctx, "ghost", validCommand())
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("should cap the page size", func(t *testing.T) {
		svc, m := newTestService(t)
		m.cards.EXPECT().ListByOwner(ctx, uint64(7), entity.PageRequest{Page: 0, Size: 100}).
			Return(entity.NewPage([]*entity.Card{}, entity.PageRequest{Size: 100}, 0), nil)

		_, err := svc.ListOwnerCards(ctx, 7, entity.PageRequest{Page: -3, Size: 1000})
		require.NoError(t, err)
	})

	t.Run("should pass filters through with the default size", func(t *testing.T) {
		svc, m := newTestService(t)
		status := entity.CardStatusBlocked
		filter := entity.CardFilter{Status: &status}.WithOwner(7)
		m.cards.EXPECT().Filter(ctx, filter, entity.PageRequest{Size: 20}).
			Return(entity.NewPage([]*entity.Card{}, entity.PageRequest{Size: 20}, 0), nil)

		_, err := svc.FilterCards(ctx, filter, entity.PageRequest{})
		require.NoError(t, err)
	})
}

func TestService_SetOwnerCardStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("should delegate to the lifecycle manager", func(t *testing.T) {
		svc, m := newTestService(t)
		blocked := &entity.Card{ID: 3, Status: entity.CardStatusBlocked}
		m.cards.EXPECT().GetByIDForOwner(ctx, uint64(3), uint64(7)).Return(&entity.Card{ID: 3}, nil)
		m.lifecycle.EXPECT().SetStatus(ctx, uint64(3), entity.CardStatusBlocked).Return(blocked, nil)

		card, err := svc.SetOwnerCardStatus(ctx, 7, 3, entity.CardStatusBlocked)
		require.NoError(t, err)
		assert.Equal(t, entity.CardStatusBlocked, card.Status)
	})

	t.Run("should hide cards of other owners", func(t *testing.T) {
		svc, m := newTestService(t)
		m.cards.EXPECT().GetByIDForOwner(ctx, uint64(3), uint64(8)).Return(nil, errs.ErrCardNotFound)

		_, err := svc.SetOwnerCardStatus(ctx, 8, 3, entity.CardStatusBlocked)
		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})
}

func TestService_DeleteCard(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)
	m.cards.EXPECT().Delete(ctx, uint64(3)).Return(nil).Once()
	m.cards.EXPECT().Delete(ctx, uint64(4)).Return(errs.ErrCardNotFound).Once()

	assert.NoError(t, svc.DeleteCard(ctx, 3))
	assert.ErrorIs(t, svc.DeleteCard(ctx, 4), errs.ErrCardNotFound)
}

func TestService_DeleteOwnerCard(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.cards.EXPECT().GetByIDForOwner(ctx, uint64(3), uint64(8)).Return(&entity.Card{ID: 3, OwnerID: 8}, nil).Once()
	m.cards.EXPECT().Delete(ctx, uint64(3)).Return(nil).Once()
	assert.NoError(t, svc.DeleteOwnerCard(ctx, 8, 3))

	m.cards.EXPECT().GetByIDForOwner(ctx, uint64(5), uint64(8)).Return(nil, errs.ErrCardNotFound).Once()
	assert.ErrorIs(t, svc.DeleteOwnerCard(ctx, 8, 5), errs.ErrCardNotFound)
}
