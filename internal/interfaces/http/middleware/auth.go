package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/infrastructure/auth"
	"gymdesk/internal/shared/constants"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/utils"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (*auth.Claims, error)
}

// RequireAuth guards routes behind the operator session token. The operator
// username is stored in the context for handlers that want it.
func RequireAuth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError("missing authorization header"))
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError("invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyOperator, claims.Username)
		c.Next()
	}
}
