// Package page owns the home page view state and its one-shot initial load.
package page

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foodtruck/logging"
	"foodtruck/web-svc/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInitialLoad wraps whichever catalog read failed the initial load.
var ErrInitialLoad = errors.New("initial data load failed")

type CatalogReader interface {
	FoodTruck(ctx context.Context) (*domain.BusinessInfo, error)
	Menu(ctx context.Context) ([]domain.MenuItem, error)
	Locations(ctx context.Context) ([]domain.Location, error)
}

type ViewState struct {
	Info      *domain.BusinessInfo
	MenuItems []domain.MenuItem
	Locations []domain.Location
	Loading   bool
}

// Controller holds the state for a single page view. The state moves from
// loading to loaded exactly once, whether or not the load succeeded.
type Controller struct {
	catalog CatalogReader
	logger  *zap.Logger

	once      sync.Once
	mu        sync.Mutex
	state     ViewState
	observers []func(ViewState)
}

func NewController(catalog CatalogReader, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logging.OrNop(logger),
		state: ViewState{
			MenuItems: []domain.MenuItem{},
			Locations: []domain.Location{},
			Loading:   true,
		},
	}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive the state after the load completes.
func (c *Controller) Subscribe(fn func(ViewState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Load reads business info, menu and locations concurrently and stores them
// only if all three succeed. A failure is logged and leaves the collections
// empty. Reads are not cancelled once started, even if ctx is. Only the
// first call does anything.
func (c *Controller) Load(ctx context.Context) {
	c.once.Do(func() {
		c.commit(c.fetch(context.WithoutCancel(ctx)))
	})
}

func (c *Controller) fetch(ctx context.Context) ViewState {
	var (
		g     errgroup.Group
		info  *domain.BusinessInfo
		items []domain.MenuItem
		locs  []domain.Location
	)

	g.Go(func() (err error) {
		info, err = c.catalog.FoodTruck(ctx)
		return err
	})
	g.Go(func() (err error) {
		items, err = c.catalog.Menu(ctx)
		return err
	})
	g.Go(func() (err error) {
		locs, err = c.catalog.Locations(ctx)
		return err
	})

	next := ViewState{
		MenuItems: []domain.MenuItem{},
		Locations: []domain.Location{},
	}
	if err := g.Wait(); err != nil {
		c.logger.Error("error fetching data", zap.Error(fmt.Errorf("%w: %w", ErrInitialLoad, err)))
		return next
	}

	next.Info = info
	if items != nil {
		next.MenuItems = items
	}
	if locs != nil {
		next.Locations = locs
	}
	return next
}

func (c *Controller) commit(next ViewState) {
	c.mu.Lock()
	c.state = next
	observers := append([]func(ViewState){}, c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
}
