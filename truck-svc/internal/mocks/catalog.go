package mocks

import (
	"context"

	"foodtruck/truck-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CatalogCache is a mock type for the CatalogCache type
type CatalogCache struct {
	mock.Mock
}

func (_m *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	ret := _m.Called(ctx, key, dest)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CatalogCache) Set(ctx context.Context, key string, value any) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

func (_m *CatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	args := []interface{}{ctx}
	for _, k := range keys {
		args = append(args, k)
	}
	ret := _m.Called(args...)
	return ret.Error(0)
}

func NewCatalogCache(t testingT) *CatalogCache {
	m := &CatalogCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CatalogPublisher is a mock type for the CatalogPublisher type
type CatalogPublisher struct {
	mock.Mock
}

func (_m *CatalogPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewCatalogPublisher(t testingT) *CatalogPublisher {
	m := &CatalogPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// QRGenerator is a mock type for the QRGenerator type
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate() ([]byte, error) {
	ret := _m.Called()

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
