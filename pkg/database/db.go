package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// User represents the users table
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FullName       string `gorm:"not null" json:"full_name"`
	Email          string `gorm:"unique;not null" json:"email"`
	HashedPassword string `json:"-"`
	Admin          bool   `gorm:"default:false" json:"admin"`
	Group          string `json:"group"`
}

// Shop represents the shops table
type Shop struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"not null" json:"name"`
	Location       string        `json:"location"`
	MapsLink       string        `json:"maps_link"`
	Description    string        `json:"description"`
	Volunteers     int           `gorm:"default:1" json:"volunteers"`
	MinTime        int           `json:"min_time"`
	MaxTime        int           `json:"max_time"`
	AvailableFrom  time.Time     `json:"available_from"`
	AvailableUntil time.Time     `json:"available_until"`
	OpenRanges     []OpeningTime `gorm:"constraint:OnDelete:CASCADE" json:"open_ranges"`
}

// OpeningTime represents the opening_times table. Times are minutes of day.
type OpeningTime struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ShopID    uint `gorm:"index;not null" json:"shop_id"`
	Day       int  `gorm:"not null" json:"day"` // 0 = Monday, 6 = Sunday
	StartTime int  `gorm:"not null" json:"start_time"`
	EndTime   int  `gorm:"not null" json:"end_time"`
}

// Reservation represents the reservations table
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ShopID    uint      `gorm:"index:idx_shop_start;not null" json:"shop_id"`
	StartTime time.Time `gorm:"index:idx_shop_start;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Validated bool      `gorm:"default:false" json:"validated"`
}

// InitDB opens Postgres when dsn is set and SQLite at path otherwise, then migrates the schema
func InitDB(dsn, path string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		if path == "" {
			path = "planner.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&User{}, &Shop{}, &OpeningTime{}, &Reservation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}
