package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/foodshare/server/internal/auth/domain"
	authUseCase "github.com/foodshare/server/internal/auth/usecase"
	"github.com/foodshare/server/internal/httputil"
)

// OwnerHandlerFunc handles a request that passed both gates. ownerEmail is the
// approved email and is the only value handlers should scope their queries by.
type OwnerHandlerFunc func(c *gin.Context, claims *authDomain.Claims, ownerEmail string)

// OwnerRoute wraps owner-scoped handlers with the identity and ownership gates.
//
// The pipeline runs in order and stops at the first failure:
//  1. GateUseCase.Authenticate on the Authorization header → 401 {"message":"unauthorized access"}
//  2. AuthorizeOwner against the "email" query parameter → 403 {"message":"forbidden access"}
//  3. handler(c, claims, ownerEmail)
//
// Usage:
//
//	owner := OwnerRoute(gateUseCase, logger)
//	router.GET("/myFood", owner(foodHandler.ListMineHandler))
func OwnerRoute(gate authUseCase.GateUseCase, logger *slog.Logger) func(OwnerHandlerFunc) gin.HandlerFunc {
	return func(handler OwnerHandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			claims, err := gate.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
			if err != nil {
				httputil.HandleErrorGin(c, err, logger)
				c.Abort()
				return
			}

			ownerEmail, err := authUseCase.AuthorizeOwner(claims, c.Query("email"))
			if err != nil {
				logger.Debug("ownership check failed", slog.String("path", c.Request.URL.Path))
				httputil.HandleErrorGin(c, err, logger)
				c.Abort()
				return
			}

			c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

			handler(c, claims, ownerEmail)
		}
	}
}
