package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"oip/account/internal/app/config"
	"oip/account/internal/app/consumer"
	"oip/account/internal/app/infra/persistence/redis"
	"oip/account/internal/app/pkg/logger"
)

var configPath = flag.String("config", "config/config.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Redis.Addr == "" || cfg.Redis.Channel == "" {
		log.Fatalf("redis.addr and redis.channel are required")
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()
	appLogger.Info("Starting account event consumer...")

	// 3. 初始化 Redis
	redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to init redis: %v", err)
	}
	defer redisClient.Close()
	appLogger.Info("Redis connected", "addr", cfg.Redis.Addr)

	// 4. 启动消费者，收到信号后退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eventConsumer := consumer.NewAccountEventConsumer(redisClient, cfg.Redis.Channel, nil, appLogger)
	if err := eventConsumer.Start(ctx); err != nil {
		appLogger.Error("Account event consumer exited", "error", err)
	}
}
