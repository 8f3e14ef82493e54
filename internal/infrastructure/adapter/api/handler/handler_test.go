package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/middleware"
	applog "github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/card-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	owner     = entity.Identity{UserID: 7, Username: "alice", Role: entity.RoleUser}
	admin     = entity.Identity{UserID: 1, Username: "admin", Role: entity.RoleAdmin}
	createdAt = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
}

func newRouter(identity *entity.Identity) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	if identity != nil {
		router.Use(func(c *gin.Context) { middleware.SetIdentity(c, *identity) })
	}
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testCard(id uint64, balance int64) *entity.Card {
	return entity.RestoreCard(id, owner.UserID, "4000123412340000", "Alice",
		time.Date(2028, 1, 31, 0, 0, 0, 0, time.UTC), entity.CardStatusActive, balance, createdAt, createdAt)
}

func TestCardHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mockusecase.MockCardUseCase) {
		cards := mockusecase.NewMockCardUseCase(t)
		h := NewCardHandler(cards, applog.NewNoopLogger())

		router := newRouter(&owner)
		router.GET("/api/cards", h.ListCards)
		router.GET("/api/cards/all", h.ListAllCards)
		router.GET("/api/cards/filter", h.FilterCards)
		router.GET("/api/cards/:id", h.GetCard)
		router.POST("/api/cards", h.IssueCard)
		router.PATCH("/api/cards/:id/status", h.UpdateStatus)
		router.DELETE("/api/cards/:id", h.DeleteCard)
		return router, cards
	}

	t.Run("Get own card is masked", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().GetOwnerCard(mock.Anything, owner.UserID, uint64(3)).Return(testCard(3, 100000), nil).Once()

		w := doRequest(router, http.MethodGet, "/api/cards/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "**** **** **** 0000", resp.MaskedCardNumber)
		assert.Equal(t, "1000.00", resp.Balance)
		assert.NotContains(t, w.Body.String(), "4000123412340000")
	})

	t.Run("Card of another owner is not found", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().GetOwnerCard(mock.Anything, owner.UserID, uint64(9)).Return(nil, domainerr.ErrCardNotFound).Once()

		w := doRequest(router, http.MethodGet, "/api/cards/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeCardNotFound, decodeError(t, w).Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodGet, "/api/cards/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Paged listing passes the page request", func(t *testing.T) {
		router, cards := setup(t)
		page := entity.NewPage([]*entity.Card{testCard(1, 0)}, entity.PageRequest{Page: 1, Size: 1}, 3)
		cards.EXPECT().ListOwnerCards(mock.Anything, owner.UserID, entity.PageRequest{Page: 1, Size: 1}).Return(page, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/cards?page=1&size=1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalItems":3`)
		assert.Contains(t, w.Body.String(), `"totalPages":3`)
	})

	t.Run("Issue card", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().IssueCard(mock.Anything, usecase.IssueCardCommand{
			OwnerID:        owner.UserID,
			Number:         "4000123412340000",
			HolderName:     "Alice",
			ExpiryDate:     time.Date(2028, 1, 31, 0, 0, 0, 0, time.UTC),
			InitialBalance: 100050,
		}).Return(testCard(5, 100050), nil).Once()

		w := doRequest(router, http.MethodPost, "/api/cards", map[string]string{
			"cardNumber": "4000123412340000",
			"holderName": "Alice",
			"expiryDate": "2028-01-31",
			"balance":    "1000.50",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Issue card rejects malformed number", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodPost, "/api/cards", map[string]string{
			"cardNumber": "4000-1234",
			"holderName": "Alice",
			"expiryDate": "2028-01-31",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("Duplicate number", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().IssueCard(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewDuplicateCardNumberError("**** **** **** 0000", owner.UserID, domainerr.DuplicateScopeGlobal)).Once()

		w := doRequest(router, http.MethodPost, "/api/cards", map[string]string{
			"cardNumber": "4000123412340000",
			"holderName": "Alice",
			"expiryDate": "2028-01-31",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeDuplicateCardNumber, decodeError(t, w).Code)
	})

	t.Run("Block card", func(t *testing.T) {
		router, cards := setup(t)
		blocked := testCard(3, 0)
		blocked.Status = entity.CardStatusBlocked
		cards.EXPECT().SetOwnerCardStatus(mock.Anything, owner.UserID, uint64(3), entity.CardStatusBlocked).Return(blocked, nil).Once()

		w := doRequest(router, http.MethodPatch, "/api/cards/3/status?status=blocked", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"BLOCKED"`)
	})

	t.Run("Expired card cannot change status", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().SetOwnerCardStatus(mock.Anything, owner.UserID, uint64(3), entity.CardStatusActive).
			Return(nil, domainerr.NewInvalidCardOperationError(3, "EXPIRED", domainerr.ReasonTerminalStatus)).Once()

		w := doRequest(router, http.MethodPatch, "/api/cards/3/status?status=ACTIVE", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidCardOperation, decodeError(t, w).Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodPatch, "/api/cards/3/status?status=FROZEN", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidStatus, decodeError(t, w).Code)
	})

	t.Run("Filter is scoped to the caller", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().FilterCards(mock.Anything, mock.MatchedBy(func(f entity.CardFilter) bool {
			return f.OwnerID != nil && *f.OwnerID == owner.UserID &&
				f.Status != nil && *f.Status == entity.CardStatusActive &&
				f.MinBalance != nil && *f.MinBalance == 1000
		}), entity.PageRequest{}).Return(entity.NewPage[*entity.Card](nil, entity.PageRequest{Size: 20}, 0), nil).Once()

		w := doRequest(router, http.MethodGet, "/api/cards/filter?status=ACTIVE&minBalance=10&userId=99", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("Filter rejects bad date", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodGet, "/api/cards/filter?expiryDateFrom=31-01-2028", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete own card", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().DeleteOwnerCard(mock.Anything, owner.UserID, uint64(3)).Return(nil).Once()

		w := doRequest(router, http.MethodDelete, "/api/cards/3", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Storage failure is hidden", func(t *testing.T) {
		router, cards := setup(t)
		cards.EXPECT().ListAllOwnerCards(mock.Anything, owner.UserID).
			Return(nil, errors.Join(domainerr.ErrDatabaseConnection, errors.New("dial tcp 10.0.0.5:5432"))).Once()

		w := doRequest(router, http.MethodGet, "/api/cards/all", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	})
}

func TestTransferHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mockusecase.MockTransferUseCase) {
		transfers := mockusecase.NewMockTransferUseCase(t)
		h := NewTransferHandler(transfers, applog.NewNoopLogger())

		router := newRouter(&owner)
		router.POST("/api/cards/transfer", h.Transfer)
		router.GET("/api/cards/transfers", h.History)
		return router, transfers
	}

	t.Run("Successful transfer", func(t *testing.T) {
		router, transfers := setup(t)
		cmd := entity.TransferCommand{SourceCardID: 1, DestinationCardID: 2, OwnerID: owner.UserID, Amount: 20000, RequestID: "req-1"}
		transfers.EXPECT().Transfer(mock.Anything, cmd).Return(&usecase.TransferResult{
			Transfer:    &entity.Transfer{ID: "t-1", RequestID: "req-1", SourceCardID: 1, DestinationCardID: 2, OwnerID: owner.UserID, Amount: 20000, CreatedAt: createdAt},
			Source:      testCard(1, 80000),
			Destination: testCard(2, 70000),
		}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/cards/transfer", map[string]any{
			"sourceCardId":      1,
			"destinationCardId": 2,
			"amount":            "200",
			"requestId":         "req-1",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransferResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "200.00", resp.Amount)
		assert.Equal(t, "800.00", resp.SourceBalance)
		assert.Equal(t, "700.00", resp.DestinationBalance)
		assert.False(t, resp.Replayed)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		router, transfers := setup(t)
		transfers.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewInsufficientFundsError(1, "801.00", "800.00")).Once()

		w := doRequest(router, http.MethodPost, "/api/cards/transfer", map[string]any{
			"sourceCardId": 1, "destinationCardId": 2, "amount": "801",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInsufficientFunds, decodeError(t, w).Code)
	})

	t.Run("Zero amount never reaches the engine", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodPost, "/api/cards/transfer", map[string]any{
			"sourceCardId": 1, "destinationCardId": 2, "amount": "0.00",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidAmount, decodeError(t, w).Code)
	})

	t.Run("Fractional cents rejected", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodPost, "/api/cards/transfer", map[string]any{
			"sourceCardId": 1, "destinationCardId": 2, "amount": "1.001",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Reused request id conflicts", func(t *testing.T) {
		router, transfers := setup(t)
		transfers.EXPECT().Transfer(mock.Anything, mock.Anything).Return(nil, domainerr.ErrIdempotencyKeyReused).Once()

		w := doRequest(router, http.MethodPost, "/api/cards/transfer", map[string]any{
			"sourceCardId": 1, "destinationCardId": 2, "amount": "5", "requestId": "req-1",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeIdempotencyKeyReused, decodeError(t, w).Code)
	})

	t.Run("History", func(t *testing.T) {
		router, transfers := setup(t)
		page := entity.NewPage([]*entity.Transfer{{ID: "t-2", Amount: 150, CreatedAt: createdAt}}, entity.PageRequest{Size: 20}, 1)
		transfers.EXPECT().History(mock.Anything, owner.UserID, entity.PageRequest{}).Return(page, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/cards/transfers", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"transferId":"t-2"`)
		assert.Contains(t, w.Body.String(), `"amount":"1.50"`)
	})
}

func TestAuthHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mockusecase.MockAuthUseCase, *mockusecase.MockUserUseCase) {
		auth := mockusecase.NewMockAuthUseCase(t)
		users := mockusecase.NewMockUserUseCase(t)
		h := NewAuthHandler(auth, users, applog.NewNoopLogger())

		router := newRouter(nil)
		router.POST("/api/auth/register", h.Register)
		router.POST("/api/auth/login", h.Login)
		return router, auth, users
	}

	t.Run("Register", func(t *testing.T) {
		router, _, users := setup(t)
		users.EXPECT().Register(mock.Anything, "bob", "secret1").
			Return(&entity.User{ID: 4, Username: "bob", Role: entity.RoleUser}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/auth/register", map[string]string{"username": "bob", "password": "secret1"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":4,"username":"bob","role":"USER"}`, w.Body.String())
	})

	t.Run("Register duplicate", func(t *testing.T) {
		router, _, users := setup(t)
		users.EXPECT().Register(mock.Anything, "bob", "secret1").Return(nil, domainerr.ErrAlreadyExists).Once()

		w := doRequest(router, http.MethodPost, "/api/auth/register", map[string]string{"username": "bob", "password": "secret1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeAlreadyExists, decodeError(t, w).Code)
	})

	t.Run("Register short password", func(t *testing.T) {
		router, _, _ := setup(t)

		w := doRequest(router, http.MethodPost, "/api/auth/register", map[string]string{"username": "bob", "password": "123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Login", func(t *testing.T) {
		router, auth, _ := setup(t)
		auth.EXPECT().Login(mock.Anything, "bob", "secret1").Return(&usecase.LoginResult{
			Token:     "signed",
			ExpiresAt: createdAt.Add(time.Hour),
			User:      &entity.User{ID: 4, Username: "bob", Role: entity.RoleUser},
		}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/auth/login", map[string]string{"username": "bob", "password": "secret1"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "2025-04-01T10:00:00Z", resp.ExpiresAt)
	})

	t.Run("Login bad credentials", func(t *testing.T) {
		router, auth, _ := setup(t)
		auth.EXPECT().Login(mock.Anything, "bob", "wrong").Return(nil, domainerr.ErrInvalidCredentials).Once()

		w := doRequest(router, http.MethodPost, "/api/auth/login", map[string]string{"username": "bob", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	type mocks struct {
		cards     *mockusecase.MockCardUseCase
		users     *mockusecase.MockUserUseCase
		lifecycle *mockusecase.MockLifecycleUseCase
	}
	setup := func(t *testing.T) (*gin.Engine, mocks) {
		m := mocks{
			cards:     mockusecase.NewMockCardUseCase(t),
			users:     mockusecase.NewMockUserUseCase(t),
			lifecycle: mockusecase.NewMockLifecycleUseCase(t),
		}
		h := NewAdminHandler(m.cards, m.users, m.lifecycle, applog.NewNoopLogger())

		router := newRouter(&admin)
		router.GET("/api/admin/cards", h.ListCards)
		router.GET("/api/admin/cards/filter", h.FilterCards)
		router.POST("/api/admin/cards", h.IssueCard)
		router.PATCH("/api/admin/cards/:id/status", h.UpdateStatus)
		router.DELETE("/api/admin/cards/:id", h.DeleteCard)
		router.POST("/api/admin/users", h.CreateUser)
		router.DELETE("/api/admin/users/:id", h.DeleteUser)
		router.POST("/api/admin/sweep", h.Sweep)
		return router, m
	}

	t.Run("List every card", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().ListAllCards(mock.Anything).Return([]*entity.Card{testCard(1, 0), testCard(2, 0)}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/admin/cards", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.CardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Filter by user", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().FilterCards(mock.Anything, mock.MatchedBy(func(f entity.CardFilter) bool {
			return f.OwnerID != nil && *f.OwnerID == 42
		}), entity.PageRequest{Size: 5}).Return(entity.NewPage[*entity.Card](nil, entity.PageRequest{Size: 5}, 0), nil).Once()

		w := doRequest(router, http.MethodGet, "/api/admin/cards/filter?userId=42&size=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Filter without user is unscoped", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().FilterCards(mock.Anything, mock.MatchedBy(func(f entity.CardFilter) bool {
			return f.OwnerID == nil
		}), entity.PageRequest{}).Return(entity.NewPage[*entity.Card](nil, entity.PageRequest{Size: 20}, 0), nil).Once()

		w := doRequest(router, http.MethodGet, "/api/admin/cards/filter", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Issue for unknown username", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().IssueCardForUsername(mock.Anything, "ghost", mock.Anything).Return(nil, domainerr.ErrUserNotFound).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/cards?username=ghost", map[string]string{
			"cardNumber": "4000123412340000", "holderName": "Ghost", "expiryDate": "2028-01-31",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeUserNotFound, decodeError(t, w).Code)
	})

	t.Run("Issue without username", func(t *testing.T) {
		router, _ := setup(t)

		w := doRequest(router, http.MethodPost, "/api/admin/cards", map[string]string{
			"cardNumber": "4000123412340000", "holderName": "Ghost", "expiryDate": "2028-01-31",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Set status on any card", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().SetCardStatus(mock.Anything, uint64(8), entity.CardStatusActive).Return(testCard(8, 0), nil).Once()

		w := doRequest(router, http.MethodPatch, "/api/admin/cards/8/status?status=ACTIVE", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete card", func(t *testing.T) {
		router, m := setup(t)
		m.cards.EXPECT().DeleteCard(mock.Anything, uint64(8)).Return(nil).Once()

		assert.Equal(t, http.StatusNoContent, doRequest(router, http.MethodDelete, "/api/admin/cards/8", nil).Code)
	})

	t.Run("Create admin user", func(t *testing.T) {
		router, m := setup(t)
		m.users.EXPECT().CreateUser(mock.Anything, "ops", "secret1", "ADMIN").
			Return(&entity.User{ID: 12, Username: "ops", Role: entity.RoleAdmin}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/users", map[string]string{
			"username": "ops", "password": "secret1", "role": "ADMIN",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
	})

	t.Run("Create user with unknown role", func(t *testing.T) {
		router, m := setup(t)
		m.users.EXPECT().CreateUser(mock.Anything, "ops", "secret1", "ROOT").Return(nil, domainerr.ErrInvalidRole).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/users", map[string]string{
			"username": "ops", "password": "secret1", "role": "ROOT",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRole, decodeError(t, w).Code)
	})

	t.Run("Delete unknown user", func(t *testing.T) {
		router, m := setup(t)
		m.users.EXPECT().DeleteUser(mock.Anything, uint64(77)).Return(domainerr.ErrUserNotFound).Once()

		assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodDelete, "/api/admin/users/77", nil).Code)
	})

	t.Run("Manual sweep", func(t *testing.T) {
		router, m := setup(t)
		m.lifecycle.EXPECT().Sweep(mock.Anything).Return(3, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/sweep", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"expired":3}`, w.Body.String())
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	t.Run("Up", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{}, "memory", nil, applog.NewNoopLogger())
		router := newRouter(nil)
		router.GET("/health", h.Health)

		w := doRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","storage":"up","driver":"memory"}`, w.Body.String())
	})

	t.Run("Down", func(t *testing.T) {
		metrics := func() any { return map[string]int{"open_connections": 0} }
		h := NewHealthHandler(stubPinger{err: errors.New("connection refused")}, "postgres", metrics, applog.NewNoopLogger())
		router := newRouter(nil)
		router.GET("/health", h.Health)

		w := doRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"storage":"down"`)
		assert.Contains(t, w.Body.String(), `"open_connections":0`)
	})
}
