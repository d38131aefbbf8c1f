package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/domain/services/container"
	"github.com/Shaon99/ota-backend/internal/error/response"
)

// HealthController answers liveness and readiness probes
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching to the health controller
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			controller.Ping()
		}
	}
}

// Ping answers a bare liveness probe
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"}, "Service is alive")
}

// Status reports readiness of the service and its backing stores
// @Summary      Health Status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	status := gin.H{
		"service":   "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	dbStatus := "ok"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil {
		dbStatus = "unavailable"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "unavailable"
	}
	status["database"] = dbStatus

	redisStatus := "ok"
	redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService)
	if !ok || redisService == nil {
		redisStatus = "unavailable"
	} else if err := redisService.Ping(); err != nil {
		redisStatus = "unavailable"
	}
	status["redis"] = redisStatus

	response.Success(c.Ctx, status, "Health status retrieved")
}
