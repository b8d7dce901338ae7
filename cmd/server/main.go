package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/arnavshah/shift-planner-go/pkg/auth"
	"github.com/arnavshah/shift-planner-go/pkg/cache"
	"github.com/arnavshah/shift-planner-go/pkg/config"
	"github.com/arnavshah/shift-planner-go/pkg/database"
	"github.com/arnavshah/shift-planner-go/pkg/handlers"
	"github.com/arnavshah/shift-planner-go/pkg/logger"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	r, cleanup, err := setup(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("startup failed", zap.Error(err))
	}
	defer cleanup()

	zlog.Info("server starting", zap.Int("port", cfg.Port), zap.String("timezone", cfg.Timezone))
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zlog.Fatal("could not run server", zap.Error(err))
	}
}

func setup(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*gin.Engine, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}

	if cfg.AdminPassword != "" {
		created, err := auth.EnsureAdminExists(ctx, db, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("seed admin: %w", err)
		}
		if created {
			zlog.Info("admin account created", zap.String("email", cfg.AdminEmail))
		}
	}

	var store cache.Store = cache.NewMemoryStore(nil)
	cleanup := func() {}
	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rs, err := cache.NewRedisStore(pingCtx, &goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, "planner:")
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		store = rs
		cleanup = func() { _ = rs.Close() }
		zlog.Info("schedule cache on redis", zap.String("addr", cfg.RedisAddr))
	}

	h := &handlers.Handler{
		Store:     database.NewStore(db, loc),
		Schedules: cache.New[models.ShopSchedule](store, cfg.CacheTTL, zlog),
		Tokens:    auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Location:  loc,
		Log:       zlog,
		Now:       time.Now,
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(logger.Middleware(zlog), gin.Recovery())
	h.Register(r)
	return r, cleanup, nil
}
