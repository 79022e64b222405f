package main

import (
	"flag"
	"log"

	"oip/account/internal/app/config"
	"oip/account/internal/app/infra/persistence/database"
	"oip/account/internal/app/pkg/logger"
)

var (
	configPath = flag.String("config", "config/config.yaml", "配置文件路径")
	recreate   = flag.Bool("recreate", false, "删除并重建账号表（会清空数据）")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Open(cfg.Database, zapLogger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	if *recreate {
		zapLogger.Warn("Recreating accounts table", "driver", cfg.Database.Driver)
		err = database.Recreate(db)
	} else {
		err = database.InitDB(db)
	}
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	zapLogger.Info("Database initialized", "driver", cfg.Database.Driver)
}
