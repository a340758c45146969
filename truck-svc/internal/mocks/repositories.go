// Package mocks holds testify mocks for the truck-svc storage and event interfaces.
package mocks

import (
	"context"

	"foodtruck/truck-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// InfoRepository is a mock type for the InfoRepository type
type InfoRepository struct {
	mock.Mock
}

func (_m *InfoRepository) GetInfo(ctx context.Context) (*domain.BusinessInfo, error) {
	ret := _m.Called(ctx)

	var r0 *domain.BusinessInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BusinessInfo)
	}
	return r0, ret.Error(1)
}

func (_m *InfoRepository) InsertInfo(ctx context.Context, info *domain.BusinessInfo) error {
	ret := _m.Called(ctx, info)
	return ret.Error(0)
}

func (_m *InfoRepository) ReplaceInfo(ctx context.Context, info *domain.BusinessInfo) error {
	ret := _m.Called(ctx, info)
	return ret.Error(0)
}

func NewInfoRepository(t testingT) *InfoRepository {
	m := &InfoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) InsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuRepository) ReplaceMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// LocationRepository is a mock type for the LocationRepository type
type LocationRepository struct {
	mock.Mock
}

func (_m *LocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Location)
	}
	return r0, ret.Error(1)
}

func (_m *LocationRepository) GetLocation(ctx context.Context, id string) (*domain.Location, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Location)
	}
	return r0, ret.Error(1)
}

func (_m *LocationRepository) InsertLocation(ctx context.Context, loc *domain.Location) error {
	ret := _m.Called(ctx, loc)
	return ret.Error(0)
}

func (_m *LocationRepository) ReplaceLocation(ctx context.Context, loc *domain.Location) error {
	ret := _m.Called(ctx, loc)
	return ret.Error(0)
}

func (_m *LocationRepository) DeleteLocation(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewLocationRepository(t testingT) *LocationRepository {
	m := &LocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
