package service

import (
	"context"
	"errors"
	"math"

	"foodtruck/truck-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InfoService struct {
	catalog
	repo InfoRepository
	qr   QRGenerator
}

func NewInfoService(repo InfoRepository, cache CatalogCache, publisher CatalogPublisher, qr QRGenerator, logger *zap.Logger) *InfoService {
	return &InfoService{
		catalog: newCatalog(cache, publisher, logger),
		repo:    repo,
		qr:      qr,
	}
}

// Get returns the stored business info, or DefaultInfo when none is stored.
func (s *InfoService) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	info, err := cachedRead(ctx, s.catalog, CacheKeyInfo, s.repo.GetInfo, func(info *domain.BusinessInfo) bool {
		return info != nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return DefaultInfo(), nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Upsert replaces the stored record, keeping its id and creation time, or
// inserts the first one.
func (s *InfoService) Upsert(ctx context.Context, info *domain.BusinessInfo) error {
	info.Name = cleanText(info.Name)
	info.Description = cleanText(info.Description)
	info.Phone = cleanText(info.Phone)
	info.Email = cleanText(info.Email)
	if info.SocialMedia != nil {
		info.SocialMedia.Instagram = cleanText(info.SocialMedia.Instagram)
		info.SocialMedia.Facebook = cleanText(info.SocialMedia.Facebook)
		if info.SocialMedia.Instagram == "" && info.SocialMedia.Facebook == "" {
			info.SocialMedia = nil
		}
	}
	if info.Name == "" {
		return invalid("name is required")
	}
	if info.Phone == "" {
		return invalid("phone is required")
	}

	existing, err := s.repo.GetInfo(ctx)
	switch {
	case err == nil:
		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
		err = s.repo.ReplaceInfo(ctx, info)
	case errors.Is(err, domain.ErrNotFound):
		info.ID = uuid.NewString()
		info.CreatedAt = s.now()
		err = s.repo.InsertInfo(ctx, info)
	}
	if err != nil {
		return err
	}

	s.changed(ctx, domain.EntityInfo, info.ID, domain.ActionUpdated)
	return nil
}

// QRCode renders a PNG QR code pointing at the public site.
func (s *InfoService) QRCode(ctx context.Context) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate()
}

type MenuService struct {
	catalog
	repo MenuRepository
}

func NewMenuService(repo MenuRepository, cache CatalogCache, publisher CatalogPublisher, logger *zap.Logger) *MenuService {
	return &MenuService{
		catalog: newCatalog(cache, publisher, logger),
		repo:    repo,
	}
}

// List returns the menu in insertion order, or SampleMenu when it is empty.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := cachedRead(ctx, s.catalog, CacheKeyMenu, s.repo.ListMenuItems, func(items []domain.MenuItem) bool {
		return len(items) > 0
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return SampleMenu(), nil
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := normalizeMenuItem(item); err != nil {
		return err
	}
	item.ID = uuid.NewString()
	item.CreatedAt = s.now()
	if err := s.repo.InsertMenuItem(ctx, item); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityMenu, item.ID, domain.ActionCreated)
	return nil
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := normalizeMenuItem(item); err != nil {
		return err
	}
	existing, err := s.repo.GetMenuItem(ctx, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = existing.CreatedAt
	if err := s.repo.ReplaceMenuItem(ctx, item); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityMenu, item.ID, domain.ActionUpdated)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	s.changed(ctx, domain.EntityMenu, id, domain.ActionDeleted)
	return nil
}

func normalizeMenuItem(item *domain.MenuItem) error {
	item.Name = cleanText(item.Name)
	item.Description = cleanText(item.Description)
	item.Category = cleanText(item.Category)
	item.ImageURL = cleanText(item.ImageURL)
	switch {
	case item.Name == "":
		return invalid("name is required")
	case item.Category == "":
		return invalid("category is required")
	case item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0):
		return invalid("price must be a non-negative number")
	}
	return nil
}

type LocationService struct {
	catalog
	repo LocationRepository
}

func NewLocationService(repo LocationRepository, cache CatalogCache, publisher CatalogPublisher, logger *zap.Logger) *LocationService {
	return &LocationService{
		catalog: newCatalog(cache, publisher, logger),
		repo:    repo,
	}
}

// List returns locations in insertion order, or SampleLocations when there are none.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locs, err := cachedRead(ctx, s.catalog, CacheKeyLocations, s.repo.ListLocations, func(locs []domain.Location) bool {
		return len(locs) > 0
	})
	if err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		return SampleLocations(), nil
	}
	return locs, nil
}

func (s *LocationService) Create(ctx context.Context, loc *domain.Location) error {
	if err := normalizeLocation(loc); err != nil {
		return err
	}
	loc.ID = uuid.NewString()
	loc.CreatedAt = s.now()
	if err := s.repo.InsertLocation(ctx, loc); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityLocation, loc.ID, domain.ActionCreated)
	return nil
}

func (s *LocationService) Update(ctx context.Context, loc *domain.Location) error {
	if err := normalizeLocation(loc); err != nil {
		return err
	}
	existing, err := s.repo.GetLocation(ctx, loc.ID)
	if err != nil {
		return err
	}
	loc.CreatedAt = existing.CreatedAt
	if err := s.repo.ReplaceLocation(ctx, loc); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityLocation, loc.ID, domain.ActionUpdated)
	return nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteLocation(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	s.changed(ctx, domain.EntityLocation, id, domain.ActionDeleted)
	return nil
}

func normalizeLocation(loc *domain.Location) error {
	loc.Name = cleanText(loc.Name)
	loc.Address = cleanText(loc.Address)
	loc.Schedule = cleanText(loc.Schedule)
	switch {
	case loc.Name == "":
		return invalid("name is required")
	case loc.Address == "":
		return invalid("address is required")
	case loc.Latitude < -90 || loc.Latitude > 90:
		return invalid("latitude %v out of range", loc.Latitude)
	case loc.Longitude < -180 || loc.Longitude > 180:
		return invalid("longitude %v out of range", loc.Longitude)
	}
	return nil
}
