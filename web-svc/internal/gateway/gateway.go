package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"foodtruck/logging"
	"foodtruck/web-svc/internal/page"
	"foodtruck/web-svc/internal/render"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	TruckSvcURL string
}

type Gateway struct {
	config   Config
	client   HTTPClient
	catalog  page.CatalogReader
	renderer *render.Renderer
	logger   *zap.Logger
}

func NewGateway(config Config, client HTTPClient, catalog page.CatalogReader, renderer *render.Renderer, logger *zap.Logger) *Gateway {
	return &Gateway{
		config:   config,
		client:   client,
		catalog:  catalog,
		renderer: renderer,
		logger:   logging.OrNop(logger),
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "web-svc",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Home renders the page from a controller scoped to this request.
func (g *Gateway) Home(w http.ResponseWriter, r *http.Request) {
	ctrl := page.NewController(g.catalog, g.logger)

	var buf bytes.Buffer
	var renderErr error
	ctrl.Subscribe(func(state page.ViewState) {
		buf.Reset()
		renderErr = g.renderer.Render(&buf, state)
	})
	ctrl.Load(r.Context())

	if renderErr != nil {
		g.logger.Error("render page", zap.Error(renderErr))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("proxy failed", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("copy proxy response", zap.Error(err))
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/") {
		g.ProxyRequest(w, r, g.config.TruckSvcURL)
		return
	}

	if path == "/" && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		g.Home(w, r)
		return
	}

	http.NotFound(w, r)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
