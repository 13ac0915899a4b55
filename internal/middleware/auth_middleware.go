package middleware

import (
	"github.com/gin-gonic/gin"

	"autoluxe/internal/store"
	"autoluxe/internal/utils"
)

// AdminRequired gates the back-office routes on the stored admin session
// flag. Session state lives in the store, not in tokens: the last
// login/logout call wins.
func AdminRequired(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdminAuthenticated() {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserRequired resolves the current session pointer and exposes the signed-in
// user to handlers. Absence of a session means anonymous.
func UserRequired(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.CurrentUser()
		if user == nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		c.Set("current_user", user)
		c.Next()
	}
}
