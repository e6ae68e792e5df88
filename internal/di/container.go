package di

import (
	"github.com/eventdesk/ticket-api/internal/handler"
	"github.com/eventdesk/ticket-api/internal/repository"
	"github.com/eventdesk/ticket-api/internal/service"
	"github.com/eventdesk/ticket-api/pkg/database"
	"github.com/eventdesk/ticket-api/pkg/redis"
)

// Container holds all dependencies for the event service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo  repository.UserRepository
	EventRepo repository.EventRepository

	// Services
	EventService service.EventService

	// Handlers
	HealthHandler *handler.HealthHandler
	EventHandler  *handler.EventHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	ServiceName string
	DB          *database.PostgresDB
	// Redis is optional
	Redis *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())
	c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool())

	// Initialize services
	c.EventService = service.NewEventService(c.UserRepo, c.EventRepo)

	// Initialize handlers
	var cache handler.Pinger
	if c.Redis != nil {
		cache = c.Redis
	}
	c.HealthHandler = handler.NewHealthHandler(cfg.ServiceName, c.DB, cache)
	c.EventHandler = handler.NewEventHandler(c.EventService)

	return c
}
