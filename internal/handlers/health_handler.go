package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"graphql-todo/backend/internal/services"
)

// HealthHandler はヘルスチェックを管理します。
type HealthHandler struct {
	todoService *services.TodoService
}

// NewHealthHandler は新しいHealthHandlerを作成します。
func NewHealthHandler(todoService *services.TodoService) *HealthHandler {
	return &HealthHandler{todoService: todoService}
}

// HealthCheckHandler はストアの件数とともに稼働状態を返します。
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "todos": h.todoService.Count()})
}
