package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Butterfli-Software/sanki-yedim/internal/bank"
	"github.com/Butterfli-Software/sanki-yedim/internal/config"
	"github.com/Butterfli-Software/sanki-yedim/internal/database"
	"github.com/Butterfli-Software/sanki-yedim/internal/logger"
	"github.com/Butterfli-Software/sanki-yedim/internal/router"
	"github.com/Butterfli-Software/sanki-yedim/internal/seed"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"go.uber.org/zap"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.Log.Level)
	defer logger.Log.Sync()

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		logger.Log.Fatal("create data dir", zap.Error(err))
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Log.Fatal("init database", zap.Error(err))
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Log.Fatal("migrate database", zap.Error(err))
	}

	st := store.New(db)

	// demo user + sample data
	if err := seed.Run(st, cfg, logger.Log); err != nil {
		logger.Log.Fatal("seed database", zap.Error(err))
	}

	providers := bank.NewFactory(st, bank.NewTimerScheduler(), cfg.SandboxDelay(), logger.Log)

	// setup router
	r := router.Setup(cfg, st, providers, logger.Log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal("run server", zap.Error(err))
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
