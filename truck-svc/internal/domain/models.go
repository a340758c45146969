package domain

import (
	"errors"
	"time"
)

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type BusinessInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email,omitempty"`
	SocialMedia *SocialMedia `json:"social_media,omitempty"`
	LogoURL     string       `json:"logo_url,omitempty"`
	BannerURL   string       `json:"banner_url,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Schedule  string    `json:"schedule,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	EntityInfo     = "foodtruck"
	EntityMenu     = "menu"
	EntityLocation = "location"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	EventCatalogChanged = "catalog_changed"
)

// CatalogEvent is published on every catalog write.
type CatalogEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
