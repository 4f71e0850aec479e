package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-booking/internal/auth"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

const ContextClaims = "claims"

// AuthMiddleware accepts "Bearer <token>" or the bare token. A missing or
// empty token is 401; a token that fails verification is 400.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))

		if raw == "" {
			httperr.Unauthorized(c, "access_denied", "Access Denied")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			httperr.Write(c, http.StatusBadRequest, "invalid_token", "Invalid Token")
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// bearerToken strips an optional "Bearer" scheme. A scheme with nothing
// after it yields an empty token.
func bearerToken(header string) string {
	raw := strings.TrimSpace(header)
	if strings.EqualFold(raw, "Bearer") {
		return ""
	}
	if scheme, rest, ok := strings.Cut(raw, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return raw
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
