package routes

import (
	"github.com/gin-gonic/gin"

	"autoluxe/internal/handlers"
)

// SetupMailRoutes sets up the mock channel trigger under the API group and
// the SMTP relay at its original path.
func SetupMailRoutes(r *gin.RouterGroup, root *gin.Engine, mailHandler *handlers.MailHandler) {
	r.POST("/mail/send", mailHandler.SendMock)

	// Path kept for compatibility with the standalone relay script
	root.POST("/api/send-code", mailHandler.SendCode)
}
