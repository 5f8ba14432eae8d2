package session

import (
	"context"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/novamart-dev/storefront-session/internal/assistant"
	"github.com/novamart-dev/storefront-session/internal/cart"
	"github.com/novamart-dev/storefront-session/internal/catalog"
	"github.com/novamart-dev/storefront-session/internal/checkout"
	"github.com/novamart-dev/storefront-session/internal/toast"
	"github.com/novamart-dev/storefront-session/pkg/config"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
	"github.com/novamart-dev/storefront-session/pkg/logger"
	"github.com/novamart-dev/storefront-session/pkg/metrics"
	"github.com/novamart-dev/storefront-session/pkg/storage"
)

// Options tunes session construction. The zero value uses the configured
// storage backend and no metrics registry.
type Options struct {
	// Store overrides the configured persistence backend, mainly for
	// embedding hosts that bring their own adapter.
	Store storage.Store

	// Registry receives the session metrics when set.
	Registry prometheus.Registerer
}

// Session is the explicitly constructed root of one storefront session. It
// owns the cart, the catalog and chat clients, the checkout flow, the toast
// queue, and the persistence adapter behind them. Nothing here is a package
// global: hosts build a session, use its accessors, and Close it.
type Session struct {
	logg    *logger.Logger
	metrics *metrics.SessionMetrics

	store      storage.Store
	closeStore func() error

	bus          *toast.Bus
	cart         *cart.Store
	catalog      *catalog.Client
	catalogLimit int
	checkout     *checkout.Orchestrator
	assistant    *assistant.History
	chat         *assistant.Client

	closed atomic.Bool
}

// New wires a complete session from configuration and hydrates its state
// from the persistence adapter.
func New(ctx context.Context, cfg config.Config, logg *logger.Logger, opts Options) (*Session, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}

	store := opts.Store
	closeStore := func() error { return nil }
	if store == nil {
		opened, closer, err := storage.Open(ctx, cfg.Storage, cfg.Redis)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open storage backend")
		}
		store = opened
		closeStore = closer
	}

	sessionMetrics := metrics.NewSessionMetrics(opts.Registry)

	api, err := httpapi.New(cfg.API, logg)
	if err != nil {
		closeStore()
		return nil, err
	}

	cartStore, err := cart.NewStore(store, logg, sessionMetrics)
	if err != nil {
		closeStore()
		return nil, err
	}
	cartStore.Hydrate(ctx)

	bus := toast.NewBus(cfg.Toast, logg)

	catalogClient, err := catalog.NewClient(api)
	if err != nil {
		bus.Close()
		closeStore()
		return nil, err
	}

	orders, err := checkout.NewClient(api)
	if err != nil {
		bus.Close()
		closeStore()
		return nil, err
	}

	orchestrator, err := checkout.NewOrchestrator(cartStore, bus, orders, logg, sessionMetrics)
	if err != nil {
		bus.Close()
		closeStore()
		return nil, err
	}

	history, err := assistant.NewHistory(store, cfg.Assistant, logg)
	if err != nil {
		bus.Close()
		closeStore()
		return nil, err
	}
	history.Hydrate(ctx)

	chat, err := assistant.NewClient(api)
	if err != nil {
		bus.Close()
		closeStore()
		return nil, err
	}

	return &Session{
		logg:         logg,
		metrics:      sessionMetrics,
		store:        store,
		closeStore:   closeStore,
		bus:          bus,
		cart:         cartStore,
		catalog:      catalogClient,
		catalogLimit: cfg.API.CatalogLimit,
		checkout:     orchestrator,
		assistant:    history,
		chat:         chat,
	}, nil
}

// Products fetches the catalog using the configured page limit.
func (s *Session) Products(ctx context.Context) ([]catalog.Product, error) {
	return s.catalog.List(ctx, s.catalogLimit)
}

// Cart returns the session's cart store.
func (s *Session) Cart() *cart.Store { return s.cart }

// Toasts returns the session's notification bus.
func (s *Session) Toasts() *toast.Bus { return s.bus }

// Catalog returns the product catalog client.
func (s *Session) Catalog() *catalog.Client { return s.catalog }

// Checkout returns the checkout orchestrator.
func (s *Session) Checkout() *checkout.Orchestrator { return s.checkout }

// Assistant returns the chat widget's message history.
func (s *Session) Assistant() *assistant.History { return s.assistant }

// Chat returns the conversational backend client.
func (s *Session) Chat() *assistant.Client { return s.chat }

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool { return s.closed.Load() }

// Close tears the session down: in-flight submissions resolve as no-ops,
// the toast stream closes, and the storage backend is released. Close is
// idempotent.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.checkout.Close()
	s.bus.Close()
	return s.closeStore()
}
