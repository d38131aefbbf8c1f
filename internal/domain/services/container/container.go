package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/pkg/logger"
)

// ServiceContainer wires the shared dependencies into the domain services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService   services.InterfaceJWTService
	authService  services.InterfaceAuthService
	b2bService   services.InterfaceB2BCustomerService
	redisService services.InterfaceRedisService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	c.initializeServices()
	return c
}

// initializeServices builds all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)
	c.b2bService = services.NewB2BCustomerService(c.db, c.config, c.jwtService)

	redisService := services.NewRedisService(c.config)
	if err := redisService.Ping(); err != nil {
		logger.Warning("Redis connection test failed: %v, response caching falls back to memory", err)
	}
	c.redisService = redisService
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "auth":
		return c.authService
	case "b2b_customer":
		return c.b2bService
	case "redis":
		return c.redisService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
