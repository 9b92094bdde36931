package http

import (
	"github.com/gin-gonic/gin"

	"tasks-timeline/internal/task"
	"tasks-timeline/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Preview(c *gin.Context)
	Create(c *gin.Context)
	Timeline(c *gin.Context)
	ListFiles(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
