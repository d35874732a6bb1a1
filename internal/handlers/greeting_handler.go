package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learning-platform/api-backend/internal/services"
)

// GreetingHandler handles HTTP requests for the greeting endpoints
type GreetingHandler struct {
	greetingService *services.GreetingService
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greetingService *services.GreetingService) *GreetingHandler {
	return &GreetingHandler{
		greetingService: greetingService,
	}
}

// Hello handles GET /api/hello
// @Summary Greeting with current time
// @Description Returns a greeting followed by the server's local date-time at the moment of handling
// @Tags greeting
// @Produce plain
// @Success 200 {string} string "Hello from Spring Boot! 当前时间: 2024-01-01T00:00:00"
// @Router /api/hello [get]
func (h *GreetingHandler) Hello(c *gin.Context) {
	c.String(http.StatusOK, h.greetingService.Hello())
}

// Test handles GET /api/test
// @Summary Fixed test message
// @Description Returns a fixed diagnostic sentence
// @Tags greeting
// @Produce plain
// @Success 200 {string} string "这是一个测试接口 - Spring Boot热更新功能正常工作！"
// @Router /api/test [get]
func (h *GreetingHandler) Test(c *gin.Context) {
	c.String(http.StatusOK, h.greetingService.Test())
}
