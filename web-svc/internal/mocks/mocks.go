// Package mocks holds testify mocks for the web-svc transport and catalog interfaces.
package mocks

import (
	"context"
	"net/http"

	"foodtruck/web-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// HTTPClient is a mock type for the HTTPClient type
type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	ret := _m.Called(req)

	var r0 *http.Response
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*http.Response)
	}
	return r0, ret.Error(1)
}

func NewHTTPClient(t testingT) *HTTPClient {
	m := &HTTPClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CatalogReader is a mock type for the CatalogReader type
type CatalogReader struct {
	mock.Mock
}

func (_m *CatalogReader) FoodTruck(ctx context.Context) (*domain.BusinessInfo, error) {
	ret := _m.Called(ctx)

	var r0 *domain.BusinessInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BusinessInfo)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogReader) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogReader) Locations(ctx context.Context) ([]domain.Location, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Location)
	}
	return r0, ret.Error(1)
}

func NewCatalogReader(t testingT) *CatalogReader {
	m := &CatalogReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
