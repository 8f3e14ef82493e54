package user

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
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/card-ledger/mocks/port/persistence"
)

type userMocks struct {
	users  *mockpersistence.MockUserRepository
	cards  *mockpersistence.MockCardStore
	uow    *mockpersistence.MockUnitOfWork
	hasher *mockcore.MockPasswordHasher
}

func newTestUseCase(t *testing.T) (*UserUseCase, userMocks) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	m := userMocks{
		users:  mockpersistence.NewMockUserRepository(t),
		cards:  mockpersistence.NewMockCardStore(t),
		uow:    mockpersistence.NewMockUnitOfWork(t),
		hasher: mockcore.NewMockPasswordHasher(t),
	}

	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()

	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}

	return NewUserUseCase(m.users, m.cards, m.uow, m.hasher, tp, log), m
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a USER account with hashed password", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
		m.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, u *entity.User) error {
				u.ID = 10
				return nil
			})

		user, err := uc.Register(ctx, "alice", "secret1")

		require.NoError(t, err)
		assert.Equal(t, uint64(10), user.ID)
		assert.Equal(t, entity.RoleUser, user.Role)
		assert.Equal(t, "hashed", user.PasswordHash)
	})

	t.Run("should reject a taken username", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

		_, err := uc.Register(ctx, "alice", "secret1")
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("should reject a short password before hashing", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Register(ctx, "alice", "123")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("should accept legacy role names", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		m.users.EXPECT().ExistsByUsername(ctx, "root").Return(false, nil)
		m.users.EXPECT().Create(ctx, mock.Anything).Return(nil)

		user, err := uc.CreateUser(ctx, "root", "password", "ROLE_ADMIN")

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.CreateUser(ctx, "root", "password", "OWNER")
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestUserUseCase_DeleteUser(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")

	t.Run("should delete cards and user in one unit", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		m.users.EXPECT().GetByID(txCtx, uint64(5)).Return(&entity.User{ID: 5}, nil)
		m.cards.EXPECT().DeleteByOwner(txCtx, uint64(5)).Return(int64(2), nil)
		m.users.EXPECT().Delete(txCtx, uint64(5)).Return(nil)
		m.uow.EXPECT().Commit(txCtx).Return(nil)

		require.NoError(t, uc.DeleteUser(ctx, 5))
	})

	t.Run("should roll back when card removal fails", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		dbErr := errors.New("deadlock detected")
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		m.users.EXPECT().GetByID(txCtx, uint64(5)).Return(&entity.User{ID: 5}, nil)
		m.cards.EXPECT().DeleteByOwner(txCtx, uint64(5)).Return(int64(0), dbErr)
		m.uow.EXPECT().Rollback(txCtx).Return(nil)

		assert.ErrorIs(t, uc.DeleteUser(ctx, 5), dbErr)
	})

	t.Run("should report unknown users", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		m.users.EXPECT().GetByID(txCtx, uint64(7)).Return(nil, errs.ErrUserNotFound)
		m.uow.EXPECT().Rollback(txCtx).Return(nil)

		assert.ErrorIs(t, uc.DeleteUser(ctx, 7), errs.ErrUserNotFound)
	})
}

func TestUserUseCase_EnsureDefaultAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("should skip an existing admin", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.users.EXPECT().GetByUsername(ctx, "admin").Return(&entity.User{ID: 1, Username: "admin"}, nil)

		assert.NoError(t, uc.EnsureDefaultAdmin(ctx, "admin", "admin123"))
	})

	t.Run("should create the admin when missing", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.users.EXPECT().GetByUsername(ctx, "admin").Return(nil, errs.ErrUserNotFound)
		m.hasher.EXPECT().Hash("admin123").Return("hashed", nil)
		m.users.EXPECT().ExistsByUsername(ctx, "admin").Return(false, nil)
		m.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin
		})).Return(nil)

		assert.NoError(t, uc.EnsureDefaultAdmin(ctx, "admin", "admin123"))
	})
}
