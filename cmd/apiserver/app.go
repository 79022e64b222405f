package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"oip/account/internal/app/config"
	"oip/account/internal/app/domains/modules/mdaccount"
	"oip/account/internal/app/domains/repo/rpaccount"
	"oip/account/internal/app/domains/services/svaccount"
	"oip/account/internal/app/infra/persistence/database"
	"oip/account/internal/app/infra/persistence/redis"
	"oip/account/internal/app/pkg/logger"
	"oip/account/internal/app/server/handlers/account"
	"oip/account/internal/app/server/routers"
)

// App 应用依赖集合
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp 按 Repository -> Module -> Service -> Handler 顺序组装依赖
// 返回的 cleanup 负责关闭数据库、Redis 和日志
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger failed: %w", err)
	}
	appLogger.Info("Setting up account service", "name", cfg.App.Name)

	db, err := database.Open(cfg.Database, appLogger)
	if err != nil {
		_ = appLogger.Sync()
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.InitDB(db); err != nil {
			_ = database.Close(db)
			_ = appLogger.Sync()
			return nil, nil, err
		}
	}
	appLogger.Info("Database connected", "driver", cfg.Database.Driver)

	var opts []svaccount.Option
	var pubsub *redis.PubSubClient
	if cfg.Redis.Addr != "" {
		pubsub, err = redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = database.Close(db)
			_ = appLogger.Sync()
			return nil, nil, err
		}
		opts = append(opts, svaccount.WithPublisher(pubsub, cfg.Redis.Channel))
		appLogger.Info("Redis connected", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
	}

	accountRepo := rpaccount.NewAccountRepository(db)
	accountModule := mdaccount.NewAccountModule(accountRepo, appLogger)
	accountService := svaccount.NewAccountService(accountModule, appLogger, opts...)
	accountHandler := account.NewAccountHandler(accountService)

	engine := routers.SetupRoutes(accountHandler, appLogger)
	appLogger.Info("Service initialized")

	cleanup := func() {
		if pubsub != nil {
			if err := pubsub.Close(); err != nil {
				appLogger.Error("Redis close error", "error", err)
			}
		}
		if err := database.Close(db); err != nil {
			appLogger.Error("Database close error", "error", err)
		}
		_ = appLogger.Sync()
	}

	return &App{Engine: engine, Logger: appLogger}, cleanup, nil
}
