package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/handler"
	applog "github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/card-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *mockusecase.MockAuthUseCase, *mockusecase.MockCardUseCase) {
	gin.SetMode(gin.TestMode)
	log := applog.NewNoopLogger()

	auth := mockusecase.NewMockAuthUseCase(t)
	cards := mockusecase.NewMockCardUseCase(t)
	users := mockusecase.NewMockUserUseCase(t)
	transfers := mockusecase.NewMockTransferUseCase(t)
	lifecycle := mockusecase.NewMockLifecycleUseCase(t)

	router := gin.New()
	SetupMiddlewares(router, log, []string{"*"})
	SetupRoutes(router, Handlers{
		Auth:     handler.NewAuthHandler(auth, users, log),
		Card:     handler.NewCardHandler(cards, log),
		Transfer: handler.NewTransferHandler(transfers, log),
		Admin:    handler.NewAdminHandler(cards, users, lifecycle, log),
		Health:   handler.NewHealthHandler(okPinger{}, "memory", nil, log),
	}, auth, log)

	return router, auth, cards
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	t.Run("Health is public", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		w := get(router, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Cards need a token", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		assert.Equal(t, http.StatusUnauthorized, get(router, "/api/cards", "").Code)
	})

	t.Run("Admin routes refuse users", func(t *testing.T) {
		router, auth, _ := newTestRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "user-token").
			Return(entity.Identity{UserID: 2, Username: "u", Role: entity.RoleUser}, nil).Once()

		assert.Equal(t, http.StatusForbidden, get(router, "/api/admin/cards", "user-token").Code)
	})

	t.Run("Admin routes serve admins", func(t *testing.T) {
		router, auth, cards := newTestRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "admin-token").
			Return(entity.Identity{UserID: 1, Username: "admin", Role: entity.RoleAdmin}, nil).Once()
		cards.EXPECT().ListAllCards(mock.Anything).Return([]*entity.Card{}, nil).Once()

		w := get(router, "/api/admin/cards", "admin-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Static card routes win over the id route", func(t *testing.T) {
		router, auth, cards := newTestRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "user-token").
			Return(entity.Identity{UserID: 2, Username: "u", Role: entity.RoleUser}, nil).Once()
		cards.EXPECT().ListAllOwnerCards(mock.Anything, uint64(2)).Return(nil, nil).Once()

		w := get(router, "/api/cards/all", "user-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
