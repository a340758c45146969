package service

import (
	"context"

	"foodtruck/truck-svc/internal/domain"
)

type InfoRepository interface {
	GetInfo(ctx context.Context) (*domain.BusinessInfo, error)
	InsertInfo(ctx context.Context, info *domain.BusinessInfo) error
	ReplaceInfo(ctx context.Context, info *domain.BusinessInfo) error
}

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	InsertMenuItem(ctx context.Context, item *domain.MenuItem) error
	ReplaceMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id string) (*domain.Location, error)
	InsertLocation(ctx context.Context, loc *domain.Location) error
	ReplaceLocation(ctx context.Context, loc *domain.Location) error
	DeleteLocation(ctx context.Context, id string) (int64, error)
}

// CatalogCache stores JSON snapshots of catalog reads.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type CatalogPublisher interface {
	PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error
}

type InfoServiceInterface interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Upsert(ctx context.Context, info *domain.BusinessInfo) error
	QRCode(ctx context.Context) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}

type LocationServiceInterface interface {
	List(ctx context.Context) ([]domain.Location, error)
	Create(ctx context.Context, loc *domain.Location) error
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id string) error
}

var (
	_ InfoServiceInterface     = (*InfoService)(nil)
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ LocationServiceInterface = (*LocationService)(nil)
)
