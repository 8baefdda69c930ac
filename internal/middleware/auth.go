package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userId"

type ctxKey struct{}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth rejects requests without a valid "Authorization: Bearer <token>"
// header. On success the user id is available via UserID and
// UserIDFromContext. It never touches the store.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ctxKey{}, userID))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// UserID returns the id stored by Auth, or "" on unprotected routes.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
