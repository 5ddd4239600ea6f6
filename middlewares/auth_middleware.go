package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

// Context keys the guard populates for downstream handlers. The resolved
// records live only for the current request.
const (
	TokenKey = "authToken"
	UserKey  = "authUser"
)

// AuthMiddleware resolves `Authorization: Bearer <tokenId>` to a token
// record and then to its user. Either lookup failing rejects the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token unrecognized."})
			return
		}

		token, user, err := services.NewTokenService().Resolve(c.Request.Context(), tokenID)
		if errors.Is(err, services.ErrNotAuthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token unrecognized."})
			return
		}
		if err != nil {
			log.Printf("auth: resolving token: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Dang. That's definitely our bad."})
			return
		}

		c.Set(TokenKey, token)
		c.Set(UserKey, user)
		c.Next()
	}
}

// bearerToken extracts the token segment from a header shaped exactly like
// "Bearer <tokenId>".
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the user the guard resolved for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentToken returns the token the guard resolved for this request.
func CurrentToken(c *gin.Context) (*models.Token, bool) {
	v, ok := c.Get(TokenKey)
	if !ok {
		return nil, false
	}
	token, ok := v.(*models.Token)
	return token, ok
}
