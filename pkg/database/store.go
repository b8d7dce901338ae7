package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

var (
	ErrShopNotFound = errors.New("error.shop.not_found")
	ErrUserNotFound = errors.New("error.user.not_found")
)

// Store reads and writes planner data. Instants are returned in Location,
// the timezone every shop's wall clock is read in.
type Store struct {
	DB       *gorm.DB
	Location *time.Location
}

// NewStore creates a Store
func NewStore(db *gorm.DB, loc *time.Location) *Store {
	return &Store{DB: db, Location: loc}
}

// ShopSchedule loads the schedule snapshot of a shop. A shop whose stored
// schedule breaks the schedule invariants is reported as an error.
func (s *Store) ShopSchedule(ctx context.Context, shopID uint) (*models.ShopSchedule, error) {
	var shop Shop
	err := s.DB.WithContext(ctx).Preload("OpenRanges").First(&shop, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	return scheduleFromShop(shop, s.Location)
}

func scheduleFromShop(shop Shop, loc *time.Location) (*models.ShopSchedule, error) {
	ranges := make([]models.OpenRange, 0, len(shop.OpenRanges))
	for _, o := range shop.OpenRanges {
		ranges = append(ranges, models.OpenRange{
			ID:        o.ID,
			Day:       o.Day,
			StartTime: calendar.TimeOfDay(o.StartTime),
			EndTime:   calendar.TimeOfDay(o.EndTime),
		})
	}

	schedule := &models.ShopSchedule{
		ShopID:         shop.ID,
		OpenRanges:     ranges,
		AvailableFrom:  shop.AvailableFrom.In(loc),
		AvailableUntil: shop.AvailableUntil.In(loc),
		MinTime:        shop.MinTime,
		MaxTime:        shop.MaxTime,
		Volunteers:     shop.Volunteers,
	}
	if err := schedule.Check(); err != nil {
		return nil, fmt.Errorf("shop %d: %w", shop.ID, err)
	}
	return schedule, nil
}

// Reservations returns the reservations of a shop that overlap [from, to)
func (s *Store) Reservations(ctx context.Context, shopID uint, from, to time.Time) ([]models.Reservation, error) {
	var rows []Reservation
	err := s.DB.WithContext(ctx).
		Where("shop_id = ? AND start_time < ? AND end_time > ?", shopID, to, from).
		Order("start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.Reservation, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.toModel(r))
	}
	return out, nil
}

// CreateReservation inserts r and fills in its ID
func (s *Store) CreateReservation(ctx context.Context, r *models.Reservation) error {
	row := Reservation{
		UserID:    r.UserID,
		ShopID:    r.ShopID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Validated: r.Validated,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	r.ID = row.ID
	return nil
}

// UserByEmail looks a user up by email
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) toModel(r Reservation) models.Reservation {
	return models.Reservation{
		ID:        r.ID,
		UserID:    r.UserID,
		ShopID:    r.ShopID,
		StartTime: r.StartTime.In(s.Location),
		EndTime:   r.EndTime.In(s.Location),
		Validated: r.Validated,
	}
}
