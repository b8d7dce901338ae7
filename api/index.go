package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/shift-planner-go/pkg/auth"
	"github.com/arnavshah/shift-planner-go/pkg/cache"
	"github.com/arnavshah/shift-planner-go/pkg/config"
	"github.com/arnavshah/shift-planner-go/pkg/database"
	"github.com/arnavshah/shift-planner-go/pkg/handlers"
	"github.com/arnavshah/shift-planner-go/pkg/logger"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

var (
	r       *gin.Engine
	initErr error
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}

	zlog, err := logger.New(cfg.LogLevel, "json")
	if err != nil {
		initErr = err
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		initErr = err
		return
	}

	// Without a DATABASE_URL each instance gets a throwaway SQLite file
	db, err := database.InitDB(cfg.DatabaseURL, "/tmp/planner.db")
	if err != nil {
		zlog.Error("database unavailable", zap.Error(err))
		initErr = err
		return
	}
	if cfg.AdminPassword != "" {
		if _, err := auth.EnsureAdminExists(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			zlog.Warn("could not seed admin", zap.Error(err))
		}
	}

	h := &handlers.Handler{
		Store:     database.NewStore(db, loc),
		Schedules: cache.New[models.ShopSchedule](cache.NewMemoryStore(nil), cfg.CacheTTL, zlog),
		Tokens:    auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Location:  loc,
		Log:       zlog,
		Now:       time.Now,
	}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(logger.Middleware(zlog), gin.Recovery())
	h.Register(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	if initErr != nil {
		http.Error(w, "service misconfigured", http.StatusInternalServerError)
		return
	}
	r.ServeHTTP(w, req)
}
