package service

import (
	"time"

	"foodtruck/truck-svc/internal/domain"

	"github.com/google/uuid"
)

// DefaultInfo is served until the owner stores their own business info.
func DefaultInfo() *domain.BusinessInfo {
	return &domain.BusinessInfo{
		ID:          uuid.NewString(),
		Name:        "Tasty Wheels Food Truck",
		Description: "Serving delicious street food with fresh ingredients and bold flavors",
		Phone:       "(555) 123-4567",
		Email:       "info@tastywheels.com",
		SocialMedia: &domain.SocialMedia{
			Instagram: "@tastywheels",
			Facebook:  "TastyWheelsFoodTruck",
		},
		CreatedAt: time.Now().UTC(),
	}
}

// SampleMenu is served while the menu table is empty.
func SampleMenu() []domain.MenuItem {
	now := time.Now().UTC()
	return []domain.MenuItem{
		{
			ID:          uuid.NewString(),
			Name:        "Gourmet Burger",
			Description: "Juicy beef patty with fresh lettuce, tomato, and our special sauce",
			Price:       12.99,
			Category:    "Burgers",
			Available:   true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fish Tacos",
			Description: "Crispy fish with cabbage slaw and lime crema in soft tortillas",
			Price:       9.99,
			Category:    "Tacos",
			Available:   true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Loaded Fries",
			Description: "Crispy fries topped with cheese, bacon, and green onions",
			Price:       7.99,
			Category:    "Sides",
			Available:   true,
			CreatedAt:   now,
		},
	}
}

// SampleLocations is served while the locations table is empty.
func SampleLocations() []domain.Location {
	now := time.Now().UTC()
	return []domain.Location{
		{
			ID:        uuid.NewString(),
			Name:      "Downtown Plaza",
			Address:   "123 Main St, Downtown",
			Latitude:  40.7128,
			Longitude: -74.0060,
			Schedule:  "Mon-Fri: 11:30AM-2:30PM",
			Active:    true,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Business District",
			Address:   "456 Corporate Blvd",
			Latitude:  40.7580,
			Longitude: -73.9855,
			Schedule:  "Mon-Fri: 12:00PM-3:00PM",
			Active:    true,
			CreatedAt: now,
		},
	}
}
