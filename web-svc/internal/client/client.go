package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodtruck/web-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var ErrUnexpectedStatus = errors.New("unexpected status")

// Client reads the catalog from truck-svc.
type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *Client) FoodTruck(ctx context.Context) (*domain.BusinessInfo, error) {
	var info domain.BusinessInfo
	if err := c.get(ctx, "/api/foodtruck", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	if err := c.get(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	locs := []domain.Location{}
	if err := c.get(ctx, "/api/locations", &locs); err != nil {
		return nil, err
	}
	if locs == nil {
		locs = []domain.Location{}
	}
	return locs, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: %w %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
