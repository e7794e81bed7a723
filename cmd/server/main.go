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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"brocki-scanner-go/config"
	"brocki-scanner-go/internal/fetcher"
	"brocki-scanner-go/internal/handler"
	"brocki-scanner-go/internal/logger"
	"brocki-scanner-go/internal/service"
)

func main() {
	// 加载 .env 文件（如果存在）
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	if envErr != nil {
		zlog.Info("No .env file found, using environment variables")
	}

	// 识别和搜索引擎尚未接入，先用占位实现
	analyzeService := service.NewAnalyzeService(fetcher.NewStubRecognizer(), zlog.Named("analyze"))
	searchService := service.NewSearchService(fetcher.NewStubListingSources(), zlog.Named("search"))

	router := handler.NewRouter(
		handler.NewAnalyzeHandler(analyzeService, zlog.Named("analyze")),
		handler.NewSearchHandler(searchService, zlog.Named("search")),
		handler.RouterOptions{MaxBodyBytes: cfg.MaxBodyBytes, Logger: zlog.Named("http")},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}
