package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/pkg/identity"
)

// Identity extracts the caller's user id from a bearer token and places
// it on the request context. The middleware is permissive: requests
// without a token pass through anonymously, and resolvers that need an
// identity reject the operation themselves.
func Identity(extractor *identity.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := extractor.UserID(parts[1])
		if err != nil {
			log.Debug().
				Str("request_id", c.GetString("request_id")).
				Err(err).
				Msg("bearer token rejected")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(identity.NewContext(c.Request.Context(), userID))
		c.Next()
	}
}
