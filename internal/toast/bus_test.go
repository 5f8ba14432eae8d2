package toast

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/novamart-dev/storefront-session/pkg/config"
	"github.com/novamart-dev/storefront-session/pkg/enums"
)

func newTestBus(ttl time.Duration, capacity int) *Bus {
	return NewBus(config.ToastConfig{TTL: ttl, Capacity: capacity}, nil)
}

func TestPublishAndActive(t *testing.T) {
	bus := newTestBus(time.Minute, 8)
	defer bus.Close()
	ctx := context.Background()

	first := bus.Publish(ctx, "Order placed successfully!", enums.ToastKindSuccess)
	second := bus.Publish(ctx, "Failed to place order. Please try again.", enums.ToastKindError)

	if first.ID == uuid.Nil || second.ID == uuid.Nil {
		t.Fatal("published toasts must carry ids")
	}

	active := bus.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active toasts, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID {
		t.Fatal("active queue lost publish order")
	}
	if active[1].Kind != enums.ToastKindError {
		t.Fatalf("unexpected kind %q", active[1].Kind)
	}
}

func TestPublishInvalidKindFallsBackToInfo(t *testing.T) {
	bus := newTestBus(time.Minute, 8)
	defer bus.Close()

	msg := bus.Publish(context.Background(), "hello", enums.ToastKind("shouting"))
	if msg.Kind != enums.ToastKindInfo {
		t.Fatalf("expected info fallback, got %q", msg.Kind)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	bus := newTestBus(time.Minute, 8)
	defer bus.Close()

	msg := bus.Publish(context.Background(), "bye", enums.ToastKindInfo)
	bus.Dismiss(msg.ID)
	bus.Dismiss(msg.ID)
	bus.Dismiss(uuid.New())

	if got := bus.Active(); len(got) != 0 {
		t.Fatalf("expected empty queue, got %v", got)
	}
}

func TestExpiryRemovesMessage(t *testing.T) {
	bus := newTestBus(20*time.Millisecond, 8)
	defer bus.Close()

	expired := make(chan uuid.UUID, 1)
	bus.onExpire = func(id uuid.UUID) { expired <- id }

	msg := bus.Publish(context.Background(), "transient", enums.ToastKindInfo)

	select {
	case id := <-expired:
		if id != msg.ID {
			t.Fatalf("expired %s, want %s", id, msg.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("toast never expired")
	}
	if got := bus.Active(); len(got) != 0 {
		t.Fatalf("expected empty queue after expiry, got %v", got)
	}
}

func TestCapacityDropsOldestFirst(t *testing.T) {
	bus := newTestBus(time.Minute, 2)
	defer bus.Close()
	ctx := context.Background()

	bus.Publish(ctx, "one", enums.ToastKindInfo)
	second := bus.Publish(ctx, "two", enums.ToastKindInfo)
	third := bus.Publish(ctx, "three", enums.ToastKindInfo)

	active := bus.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active toasts, got %d", len(active))
	}
	if active[0].ID != second.ID || active[1].ID != third.ID {
		t.Fatalf("expected oldest dropped, got %v", active)
	}
}

func TestSubscribeReceivesPublishes(t *testing.T) {
	bus := newTestBus(time.Minute, 8)
	defer bus.Close()

	events := bus.Subscribe()
	msg := bus.Publish(context.Background(), "hello", enums.ToastKindSuccess)

	select {
	case got := <-events:
		if got.ID != msg.ID || got.Text != "hello" {
			t.Fatalf("unexpected event %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestCloseStopsTheBus(t *testing.T) {
	bus := newTestBus(time.Minute, 8)
	events := bus.Subscribe()

	bus.Publish(context.Background(), "pending", enums.ToastKindInfo)
	bus.Close()
	bus.Close()

	if msg := bus.Publish(context.Background(), "late", enums.ToastKindInfo); msg.ID != uuid.Nil {
		t.Fatal("publish after close must be a no-op")
	}
	if got := bus.Active(); len(got) != 0 {
		t.Fatalf("expected drained queue, got %v", got)
	}

	// drain the buffered publish, then expect a closed channel
	for {
		if _, ok := <-events; !ok {
			return
		}
	}
}
