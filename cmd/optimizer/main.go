package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"optimizer/internal/api"
	"optimizer/internal/bot"
	"optimizer/internal/config"
	"optimizer/internal/repository"
	"optimizer/internal/service"
	"optimizer/internal/texts"
	"optimizer/internal/wizard"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := repository.NewDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	sessions := wizard.NewSessionRegistry()
	engine := wizard.NewEngine(userRepo, texts.New(), sessions, cfg.RolePasswords, cfg.WebAppURL, logger)

	telegramBot, err := bot.New(cfg.TelegramToken, engine, logger)
	if err != nil {
		logger.Fatal("create bot", zap.Error(err))
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(time.Minute, func() {
		if n := sessions.Sweep(cfg.SessionTTL); n > 0 {
			logger.Info("expired idle sessions", zap.Int("count", n))
		}
	}); err != nil {
		logger.Fatal("schedule session sweeper", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.New(orderRepo, logger),
	}
	go func() {
		logger.Info("order api listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("order api stopped", zap.Error(err))
			stop()
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown order api", zap.Error(err))
		}
	}()

	logger.Info("optimizer bot started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("bot stopped with error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
