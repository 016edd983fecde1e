package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/forumapi/forum-api/internal/rest/response"
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "user_id"

// accessClaims is the payload of an access token issued by the
// authentication service.
type accessClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// AuthMiddleware accepts HS256 bearer tokens signed with secret and stores
// the "id" claim under UserIDKey.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	keyFunc := func(*jwt.Token) (any, error) {
		return key, nil
	}

	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewFail("Missing authentication"))
			return
		}

		claims := &accessClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || claims.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewFail("Invalid token"))
			return
		}

		c.Set(UserIDKey, claims.ID)
		c.Next()
	}
}
