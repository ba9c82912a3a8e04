package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/next-support/internal/config"
	"github.com/ashwinyue/next-support/internal/database"
	"github.com/ashwinyue/next-support/internal/handler"
	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/repository"
	"github.com/ashwinyue/next-support/internal/router"
	"github.com/ashwinyue/next-support/internal/service"
	"github.com/ashwinyue/next-support/internal/service/intent"
)

func main() {
	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log := logger.L()
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: cfg.App.Name,
	})
	log := logger.L()

	// 设置 Gin 模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化数据库
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to init database")
	}
	defer db.Close()

	log.Info().Str("driver", cfg.Database.Driver).Str("dbname", cfg.Database.DBName).Msg("database connected")

	// 初始化 Redis，未启用时管理员会话保存在内存中
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.GetAddr()).Msg("failed to connect redis")
		}
		log.Info().Str("addr", cfg.Redis.GetAddr()).Msg("redis connected")
	}

	// 加载兜底意图集
	fallback, err := intent.LoadFallbackSet(cfg.Intents.FallbackPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Intents.FallbackPath).Msg("failed to load fallback intents")
	}
	log.Info().Int("intents", fallback.Len()).Msg("fallback intents loaded")

	// 初始化各层
	repos := repository.NewRepositories(db.DB)
	services, err := service.NewServices(repos, cfg, redisClient, fallback)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init services")
	}
	handlers := handler.NewHandlers(services, db)

	// 初始化路由
	r := router.SetupRouter(handlers, services)

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// 启动服务器
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited")
}
