package checkout

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/novamart-dev/storefront-session/internal/cart"
	"github.com/novamart-dev/storefront-session/internal/toast"
	"github.com/novamart-dev/storefront-session/pkg/enums"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
	"github.com/novamart-dev/storefront-session/pkg/logger"
	"github.com/novamart-dev/storefront-session/pkg/metrics"
)

const successToast = "Order placed successfully!"

type orderCreator interface {
	Create(ctx context.Context, payload OrderPayload) (OrderResponse, error)
}

// Orchestrator runs the checkout flow: validate the form, snapshot the
// cart, submit the order asynchronously, and reconcile the session state
// from the outcome. The cart is cleared only after the server acknowledges
// the order; a failed submission leaves it untouched.
type Orchestrator struct {
	logg    *logger.Logger
	metrics *metrics.SessionMetrics
	cart    *cart.Store
	bus     *toast.Bus
	orders  orderCreator

	closed   atomic.Bool
	mu       sync.Mutex
	inFlight bool
}

// NewOrchestrator wires the checkout flow over its collaborators.
func NewOrchestrator(cartStore *cart.Store, bus *toast.Bus, orders orderCreator, logg *logger.Logger, sessionMetrics *metrics.SessionMetrics) (*Orchestrator, error) {
	if cartStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart store required")
	}
	if bus == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "toast bus required")
	}
	if orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders client required")
	}
	return &Orchestrator{
		logg:    logg,
		metrics: sessionMetrics,
		cart:    cartStore,
		bus:     bus,
		orders:  orders,
	}, nil
}

// Handle tracks one in-flight submission.
type Handle struct {
	done     chan struct{}
	canceled atomic.Bool

	orderID int64
	err     error
}

// Cancel marks the submission's outcome as uninteresting. The request is
// not aborted; its response simply no longer mutates the session.
func (h *Handle) Cancel() {
	h.canceled.Store(true)
}

// Done is closed once the submission has resolved.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Result returns the outcome after Done is closed.
func (h *Handle) Result() (int64, error) {
	return h.orderID, h.err
}

// Submit validates the form against the current cart and, when both pass,
// posts the order on a goroutine. Validation failures return synchronously
// and touch nothing. onPlaced runs after a successful submission with the
// new order id, once the cart has been cleared.
func (o *Orchestrator) Submit(ctx context.Context, form Form, onPlaced func(orderID int64)) (*Handle, error) {
	if o.closed.Load() {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session is closed")
	}
	if o.cart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if err := ValidateForm(&form); err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "an order submission is already in progress")
	}
	o.inFlight = true
	o.mu.Unlock()

	payload := BuildPayload(o.cart.Items(), o.cart.Total(), form)
	handle := &Handle{done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		defer func() {
			o.mu.Lock()
			o.inFlight = false
			o.mu.Unlock()
		}()

		started := time.Now()
		resp, err := o.orders.Create(ctx, payload)
		if err != nil {
			o.metrics.ObserveSubmission("failure", time.Since(started))
			o.failed(ctx, handle, err)
			return
		}
		o.metrics.ObserveSubmission("success", time.Since(started))
		o.placed(ctx, handle, resp, onPlaced)
	}()

	return handle, nil
}

// Close marks the orchestrator dead. In-flight submissions resolve without
// touching the cart or the toast queue.
func (o *Orchestrator) Close() {
	o.closed.Store(true)
}

func (o *Orchestrator) alive(handle *Handle) bool {
	return !o.closed.Load() && !handle.canceled.Load()
}

func (o *Orchestrator) placed(ctx context.Context, handle *Handle, resp OrderResponse, onPlaced func(orderID int64)) {
	handle.orderID = resp.ID
	if !o.alive(handle) {
		return
	}

	o.cart.Clear(ctx)
	o.bus.Publish(ctx, successToast, enums.ToastKindSuccess)
	if o.logg != nil {
		o.logg.Info(o.logg.WithOrderID(ctx, strconv.FormatInt(resp.ID, 10)), "order placed")
	}
	if onPlaced != nil {
		onPlaced(resp.ID)
	}
}

func (o *Orchestrator) failed(ctx context.Context, handle *Handle, err error) {
	handle.err = err
	if !o.alive(handle) {
		return
	}

	if o.logg != nil {
		o.logg.Error(ctx, "order submission failed", err)
	}

	text := pkgerrors.UserMessage(err)
	if detail, ok := httpapi.Detail(err); ok && detail != "" {
		text = detail
	}
	o.bus.Publish(ctx, text, enums.ToastKindError)
}
