package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodtruck/web-svc/internal/client"
	"foodtruck/web-svc/internal/domain"
	"foodtruck/web-svc/internal/gateway"
	"foodtruck/web-svc/internal/mocks"
	"foodtruck/web-svc/internal/render"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.NewRenderer()
	require.NoError(t, err)
	return renderer
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "web-svc", body["service"])
}

func TestGateway_ProxiesAPI(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{TruckSvcURL: "http://truck-svc"}, mockClient, nil, nil, nil)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[{"id":"1","name":"Al Pastor"}]`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://truck-svc/api/menu?category=Tacos" && req.Header.Get("X-Request-Id") == "abc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?category=Tacos", nil)
	req.Header.Set("X-Request-Id", "abc")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Al Pastor")
}

func TestGateway_ProxyKeepsMethodAndStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{TruckSvcURL: "http://truck-svc"}, mockClient, nil, nil, nil)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodDelete && req.URL.Path == "/api/menu/42" && len(body) == 0
	})).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader("Menu item not found\n")),
		Header:     make(http.Header),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/menu/42", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Menu item not found")
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{TruckSvcURL: "http://invalid"}, mockClient, nil, nil, nil)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "connection failed")
}

func TestGateway_UnknownPath(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_HomeRendersCatalog(t *testing.T) {
	reader := mocks.NewCatalogReader(t)
	reader.On("FoodTruck", mock.Anything).Return(&domain.BusinessInfo{Name: "Taco Blaze", Phone: strPtr("555-1234")}, nil).Once()
	reader.On("Menu", mock.Anything).Return([]domain.MenuItem{
		{ID: "1", Name: "Al Pastor", Category: "Tacos", Price: 3.5, Available: true},
		{ID: "2", Name: "Horchata", Category: "Drinks", Price: 2, Available: true},
	}, nil).Once()
	reader.On("Locations", mock.Anything).Return([]domain.Location{}, nil).Once()

	gw := gateway.NewGateway(gateway.Config{}, nil, reader, newRenderer(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, "Taco Blaze", doc.Find("header h1").Text())
	assert.Equal(t, "Tacos", doc.Find("#menu .category h3").First().Text())
}

func TestGateway_HomeFreshStatePerRequest(t *testing.T) {
	reader := mocks.NewCatalogReader(t)
	reader.On("FoodTruck", mock.Anything).Return(&domain.BusinessInfo{Name: "Taco Blaze"}, nil).Twice()
	reader.On("Menu", mock.Anything).Return(nil, errors.New("menu down")).Once()
	reader.On("Menu", mock.Anything).Return([]domain.MenuItem{{ID: "1", Name: "Al Pastor", Category: "Tacos", Available: true}}, nil).Once()
	reader.On("Locations", mock.Anything).Return([]domain.Location{}, nil).Twice()

	handler := gateway.NewGateway(gateway.Config{}, nil, reader, newRenderer(t), nil).SetupRoutes()

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	firstDoc, err := goquery.NewDocumentFromReader(first.Body)
	require.NoError(t, err)
	assert.Equal(t, "Loading...", firstDoc.Find("header h1").Text())
	assert.Equal(t, 0, firstDoc.Find("#menu .menu-card").Length())

	secondDoc, err := goquery.NewDocumentFromReader(second.Body)
	require.NoError(t, err)
	assert.Equal(t, "Taco Blaze", secondDoc.Find("header h1").Text())
	assert.Equal(t, 1, secondDoc.Find("#menu .menu-card").Length())
}

// truckServer serves canned catalog JSON on the truck-svc routes.
func truckServer(t *testing.T, menuStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/foodtruck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"i1","name":"Taco Blaze","description":"Street tacos","phone":"555-1234","social_media":{"instagram":"@tacoblaze"}}`)
	})
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		if menuStatus != http.StatusOK {
			http.Error(w, "boom", menuStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"1","name":"Al Pastor","category":"Tacos","price":3.5,"available":true},
			{"id":"2","name":"Horchata","category":"Drinks","price":2,"available":false}]`)
	})
	mux.HandleFunc("/api/locations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"l1","name":"Harbor","address":"9 Pier Rd","active":true}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func serveHome(t *testing.T, apiURL string) *goquery.Document {
	t.Helper()
	httpClient := &http.Client{}
	t.Cleanup(httpClient.CloseIdleConnections)
	gw := gateway.NewGateway(gateway.Config{TruckSvcURL: apiURL}, httpClient, client.NewClient(apiURL, httpClient), newRenderer(t), nil)
	site := httptest.NewServer(gw.SetupRoutes())
	t.Cleanup(site.Close)

	resp, err := httpClient.Get(site.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func TestSite_EndToEnd(t *testing.T) {
	doc := serveHome(t, truckServer(t, http.StatusOK).URL)

	assert.Equal(t, "Taco Blaze", doc.Find("header h1").Text())
	assert.Contains(t, doc.Find("header").Text(), "555-1234")
	assert.Equal(t, 0, doc.Find("header .email").Length())
	assert.Equal(t, 2, doc.Find("#menu .category").Length())
	_, disabled := doc.Find(`.menu-card[data-id="2"] button`).Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, 1, doc.Find("#locations .location-card").Length())
	href, _ := doc.Find("#social a.instagram").Attr("href")
	assert.Equal(t, "https://instagram.com/tacoblaze", href)
}

func TestSite_MenuFailureDropsEverything(t *testing.T) {
	doc := serveHome(t, truckServer(t, http.StatusInternalServerError).URL)

	assert.Equal(t, "Loading...", doc.Find("header h1").Text())
	assert.NotContains(t, doc.Text(), "Taco Blaze")
	assert.Equal(t, 0, doc.Find("#menu .category").Length())
	assert.Equal(t, 0, doc.Find("#locations .location-card").Length())
}
