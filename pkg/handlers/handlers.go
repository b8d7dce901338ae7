package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/shift-planner-go/pkg/auth"
	"github.com/arnavshah/shift-planner-go/pkg/cache"
	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/database"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

// Store is the persistence the handlers need
type Store interface {
	ShopSchedule(ctx context.Context, shopID uint) (*models.ShopSchedule, error)
	Reservations(ctx context.Context, shopID uint, from, to time.Time) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, r *models.Reservation) error
	UserByEmail(ctx context.Context, email string) (*database.User, error)
}

// Handler contains dependencies for the route handlers
type Handler struct {
	Store     Store
	Schedules *cache.Cache[models.ShopSchedule]
	Tokens    *auth.Issuer
	Location  *time.Location
	Log       *zap.Logger
	Now       func() time.Time
}

// Register mounts every route on r
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Planner API",
			"version": "1.0.0",
		})
	})
	r.POST("/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/weeks/iso/:year/:week", h.GetWeek)
		api.GET("/weeks/of/:date", h.GetWeekOf)
		api.POST("/validate", h.ValidateSchedule)
		api.POST("/shops/:id/check", h.CheckShop)
		api.POST("/shops/:id/book", h.Book)
		api.GET("/shops/:id/:monday/list", h.GetPlanning)
	}
}

// AuthMiddleware verifies the JWT bearer token
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := h.Tokens.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}

// Login exchanges an email and password for an access token
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, database.ErrUserNotFound) {
			h.Log.Error("user lookup failed", zap.Error(err))
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expires, err := h.Tokens.CreateToken(user)
	if err != nil {
		h.Log.Error("token signing failed", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      user.ID,
		"access_token": token,
		"expires_at":   calendar.ToNetworkInstant(expires.In(h.Location)),
		"token_type":   "bearer",
	})
}

// loadSchedule returns the cached schedule of a shop, or nil when the shop does not exist
func (h *Handler) loadSchedule(ctx context.Context, shopID uint) (*models.ShopSchedule, error) {
	key := "schedule:" + strconv.FormatUint(uint64(shopID), 10)
	schedule, err := h.Schedules.GetOrLoad(ctx, key, func(ctx context.Context) (models.ShopSchedule, error) {
		s, err := h.Store.ShopSchedule(ctx, shopID)
		if err != nil {
			return models.ShopSchedule{}, err
		}
		return *s, nil
	})
	if errors.Is(err, database.ErrShopNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func shopID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return 0, false
	}
	return uint(id), true
}

func caller(c *gin.Context) (uint, bool) {
	return c.GetUint("userID"), c.GetBool("admin")
}

// badInput writes a 400 for malformed dates, times and week anchors
func badInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
