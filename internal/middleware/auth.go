package middleware

import (
	"net/http"
	"strings"

	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"
	"tangle/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "current_user"

// Auth guards protected routes: bearer token must parse, match the redis
// whitelist entry, and belong to an active user.
func Auth(users *mysql.UserRepository, tokens *redis.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, users, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and lets the
// request through anonymously otherwise.
func OptionalAuth(users *mysql.UserRepository, tokens *redis.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, users, tokens); ok {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil on optional-auth routes
// with no credentials.
func CurrentUser(c *gin.Context) *model.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

func resolveUser(c *gin.Context, users *mysql.UserRepository, tokens *redis.TokenRepository) (*model.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	tokenStr := parts[1]

	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, false
	}

	stored, err := tokens.Get(c.Request.Context(), claims.UserID)
	if err != nil || stored != tokenStr {
		return nil, false
	}
	// Sliding expiry: a failed extend is not worth rejecting the request.
	_ = tokens.Extend(c.Request.Context(), claims.UserID)

	user, err := users.FindActiveByID(claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
