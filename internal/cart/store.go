package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/novamart-dev/storefront-session/internal/catalog"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/logger"
	"github.com/novamart-dev/storefront-session/pkg/metrics"
	"github.com/novamart-dev/storefront-session/pkg/storage"
)

// Store owns the session's line items and their derived total. It is built
// for a single-threaded UI loop: operations apply in invocation order and
// every mutation hands a snapshot to the persistence writer.
type Store struct {
	logg    *logger.Logger
	metrics *metrics.SessionMetrics
	writer  *snapshotWriter

	items []Item
	rev   uint64
}

// NewStore wires a cart store over the given persistence adapter.
func NewStore(adapter storage.Store, logg *logger.Logger, sessionMetrics *metrics.SessionMetrics) (*Store, error) {
	if adapter == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "persistence adapter required")
	}
	return &Store{
		logg:    logg,
		metrics: sessionMetrics,
		writer:  newSnapshotWriter(adapter, logg, storage.KeyCartItems),
	}, nil
}

// Hydrate loads the persisted snapshot, defaulting to an empty cart when the
// key is missing or the payload no longer decodes.
func (s *Store) Hydrate(ctx context.Context) {
	items, err := storage.LoadJSON(ctx, s.writer.store, storage.KeyCartItems, []Item(nil))
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "hydrate cart snapshot", err)
		}
		items = nil
	}
	s.items = sanitize(items)
	s.rev = 0
	s.writer.reset()
}

// Add puts quantity units of product into the cart. An existing line item
// for the same product accumulates; a new product appends a line item.
func (s *Store) Add(ctx context.Context, product catalog.Product, quantity int) error {
	if product.ID == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if idx := s.indexOf(product.ID); idx >= 0 {
		s.items[idx].Quantity += quantity
	} else {
		s.items = append(s.items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	s.metrics.IncCartOp("add")
	s.persist(ctx)
	return nil
}

// AddOne adds a single unit, the shop grid's add-to-cart action.
func (s *Store) AddOne(ctx context.Context, product catalog.Product) error {
	return s.Add(ctx, product, 1)
}

// Remove deletes the line item if present; removing an absent product is a
// no-op.
func (s *Store) Remove(ctx context.Context, productID int64) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.metrics.IncCartOp("remove")
	s.persist(ctx)
}

// SetQuantity replaces the line item's quantity; anything non-positive
// removes the item instead.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}
	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity = quantity
	s.metrics.IncCartOp("set_quantity")
	s.persist(ctx)
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.metrics.IncCartOp("clear")
	s.persist(ctx)
}

// Items returns a copy of the ordered line items.
func (s *Store) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Total recomputes the cart total from the current line items on every
// call; it is never cached.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price.Mul(item.Quantity))
	}
	return total
}

// Count returns the number of units across all line items, the navbar
// badge figure.
func (s *Store) Count() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no line items.
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) {
	s.rev++
	s.writer.write(ctx, s.rev, s.Items())
}

// sanitize drops snapshot rows that violate the line item invariants, which
// guards against hand-edited or partially written storage.
func sanitize(items []Item) []Item {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
