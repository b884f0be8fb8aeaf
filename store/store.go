// Package store persists the small amount of device-local state that
// must survive restarts: auth token, serialized user, last-known
// restaurant display info, generated QR codes and the language
// preference. Everything behind it is best-effort; a missing or broken
// store degrades to zero values and never fails a caller.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/menuly/restaurant-admin/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setting is one persisted key/value row.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Well-known keys.
const (
	keyToken        = "auth.token"
	keyUser         = "auth.user"
	keyRestaurant   = "restaurant.info"
	keyLanguage     = "ui.language"
	keyTableCount   = "qr.tableCount"
	keyQRBatch      = "qr.batch"
	defaultLanguage = "en"
)

// Store is the typed accessor layer over the local settings file.
type Store struct {
	db *gorm.DB
}

// Open creates or opens the settings database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings: %w", err)
	}
	return &Store{db: db}, nil
}

// get returns "" on any failure, including a missing row.
func (s *Store) get(key string) string {
	var row Setting
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		return ""
	}
	return row.Value
}

// set is best-effort; failures are logged and swallowed.
func (s *Store) set(key, value string) {
	row := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		log.Printf("store: failed to persist %s: %v", key, err)
	}
}

func (s *Store) delete(key string) {
	s.db.Delete(&Setting{}, "key = ?", key)
}

// Token implements client.TokenSource.
func (s *Store) Token() string { return s.get(keyToken) }

func (s *Store) SetToken(token string) { s.set(keyToken, token) }

// User returns the persisted user record, nil when absent or
// unreadable.
func (s *Store) User() map[string]any {
	raw := s.get(keyUser)
	if raw == "" {
		return nil
	}
	var u map[string]any
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return u
}

func (s *Store) SetUser(u map[string]any) {
	buf, err := json.Marshal(u)
	if err != nil {
		return
	}
	s.set(keyUser, string(buf))
}

// ClearSession drops the token and user on logout.
func (s *Store) ClearSession() {
	s.delete(keyToken)
	s.delete(keyUser)
}

// RestaurantInfo returns the cached display header, zero when absent.
func (s *Store) RestaurantInfo() models.RestaurantInfo {
	var info models.RestaurantInfo
	raw := s.get(keyRestaurant)
	if raw == "" {
		return info
	}
	_ = json.Unmarshal([]byte(raw), &info)
	return info
}

func (s *Store) SetRestaurantInfo(info models.RestaurantInfo) {
	buf, err := json.Marshal(info)
	if err != nil {
		return
	}
	s.set(keyRestaurant, string(buf))
}

// Language returns the display language preference, defaulting to
// English.
func (s *Store) Language() string {
	if lang := s.get(keyLanguage); lang != "" {
		return lang
	}
	return defaultLanguage
}

func (s *Store) SetLanguage(lang string) { s.set(keyLanguage, lang) }

// TableCount returns the last requested QR table count, 0 when unset.
func (s *Store) TableCount() int {
	n, err := strconv.Atoi(s.get(keyTableCount))
	if err != nil {
		return 0
	}
	return n
}

func (s *Store) SetTableCount(n int) { s.set(keyTableCount, strconv.Itoa(n)) }

// QRBatch returns the persisted table codes so a restart does not lose
// previously generated codes.
func (s *Store) QRBatch() []models.TableCode {
	raw := s.get(keyQRBatch)
	if raw == "" {
		return nil
	}
	var codes []models.TableCode
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil
	}
	return codes
}

func (s *Store) SetQRBatch(codes []models.TableCode) {
	buf, err := json.Marshal(codes)
	if err != nil {
		return
	}
	s.set(keyQRBatch, string(buf))
	s.SetTableCount(len(codes))
}
