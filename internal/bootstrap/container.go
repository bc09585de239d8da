package bootstrap

import (
	"context"
	"time"

	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/controller"
	"brokeria-dashboard-be/internal/pkg/logger"
	"brokeria-dashboard-be/internal/repository/contract"
	"brokeria-dashboard-be/internal/repository/implementation"
	"brokeria-dashboard-be/internal/repository/memory"
	"brokeria-dashboard-be/internal/repository/unitofwork"
	"brokeria-dashboard-be/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Services
	AuthService   service.IAuthService
	RecordService service.IRecordService

	// Controllers
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController
	RecordController    controller.IRecordController
	HealthController    controller.IHealthController

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) (*Container, error) {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	c := &Container{Logger: log}
	denylist := c.newTokenDenylist(cfg.App.RedisURL)

	authService := service.NewAuthService(uowFactory, denylist, cfg.Auth, log)
	recordService := service.NewRecordService(uowFactory)

	c.AuthService = authService
	c.RecordService = recordService
	c.AuthController = controller.NewAuthController(authService)
	c.DashboardController = controller.NewDashboardController(recordService)
	c.RecordController = controller.NewRecordController(recordService)
	c.HealthController = controller.NewHealthController(sqlDB)

	return c, nil
}

// newTokenDenylist prefers Redis so revocations are shared between instances,
// and falls back to process memory when Redis is absent or unreachable.
func (c *Container) newTokenDenylist(redisURL string) contract.TokenDenylist {
	if redisURL == "" {
		c.Logger.Info("Bootstrap", "Using in-memory token denylist", nil)
		return memory.NewTokenDenylist()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		c.Logger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: redisURL}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		c.Logger.Warn("Bootstrap", "Redis unreachable, using in-memory token denylist", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return memory.NewTokenDenylist()
	}

	c.closers = append(c.closers, rdb.Close)
	c.Logger.Info("Bootstrap", "Using Redis token denylist", map[string]interface{}{"addr": opt.Addr})
	return implementation.NewRedisTokenDenylist(rdb)
}

// Close releases external clients opened by the container.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
