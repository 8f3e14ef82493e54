package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate resolves "Authorization: Bearer <token>" into an entity.Identity
// stored on the gin context. Requests without a valid token are answered with 401.
func Authenticate(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, domainerr.ErrUnauthenticated)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
			abortWithError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole answers 403 unless the authenticated identity has role
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			abortWithError(c, domainerr.ErrUnauthenticated)
			return
		}
		if identity.Role != role {
			abortWithError(c, domainerr.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Authenticate
func CurrentIdentity(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}

// SetIdentity stores identity on the context
func SetIdentity(c *gin.Context, identity entity.Identity) {
	c.Set(identityKey, identity)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortWithError(c *gin.Context, err error) {
	status := domainerr.HTTPStatus(err)
	if status == http.StatusOK {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
}
