package http

import (
	"github.com/gin-gonic/gin"

	"tasks-timeline/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The preview
// endpoint is called on every keystroke and is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/quick-entry/preview", mw.RateLimit(), h.Preview)
	rg.POST("/tasks", h.Create)
	rg.GET("/timeline", h.Timeline)
	rg.GET("/files", h.ListFiles)
}
