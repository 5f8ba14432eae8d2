package toast

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novamart-dev/storefront-session/pkg/config"
	"github.com/novamart-dev/storefront-session/pkg/enums"
	"github.com/novamart-dev/storefront-session/pkg/logger"
)

// Message is a single transient notification shown to the user.
type Message struct {
	ID        uuid.UUID       `json:"id"`
	Text      string          `json:"text"`
	Kind      enums.ToastKind `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
}

// Bus owns the session's toast queue. Each published message expires after
// the configured TTL unless dismissed first; expiry and dismissal are
// idempotent. The bus is owned by one session context, never shared as a
// package global.
type Bus struct {
	logg *logger.Logger
	ttl  time.Duration
	cap  int

	mu       sync.Mutex
	active   []Message
	timers   map[uuid.UUID]*time.Timer
	events   chan Message
	closed   bool
	nowFunc  func() time.Time
	onExpire func(uuid.UUID)
}

// NewBus builds a toast bus from the session's toast configuration.
func NewBus(cfg config.ToastConfig, logg *logger.Logger) *Bus {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.DefaultToastTTL
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = config.DefaultToastCapacity
	}
	return &Bus{
		logg:    logg,
		ttl:     ttl,
		cap:     capacity,
		timers:  make(map[uuid.UUID]*time.Timer),
		events:  make(chan Message, capacity),
		nowFunc: time.Now,
	}
}

// Publish appends a toast and schedules its expiry. When the queue is at
// capacity the oldest toast is dropped first. Publishing on a closed bus
// returns the zero Message.
func (b *Bus) Publish(ctx context.Context, text string, kind enums.ToastKind) Message {
	if !kind.IsValid() {
		kind = enums.ToastKindInfo
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Message{}
	}

	msg := Message{
		ID:        uuid.New(),
		Text:      text,
		Kind:      kind,
		CreatedAt: b.nowFunc(),
	}

	if len(b.active) >= b.cap {
		b.removeLocked(b.active[0].ID)
	}
	b.active = append(b.active, msg)
	b.timers[msg.ID] = time.AfterFunc(b.ttl, func() {
		b.expire(msg.ID)
	})

	select {
	case b.events <- msg:
	default:
		if b.logg != nil {
			b.logg.Warn(ctx, "toast subscriber lagging, event dropped")
		}
	}
	return msg
}

// Dismiss removes the toast if it is still active. Dismissing an unknown or
// already expired id is a no-op.
func (b *Bus) Dismiss(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(id)
}

// Active returns a copy of the queue in publish order.
func (b *Bus) Active() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Message, len(b.active))
	copy(out, b.active)
	return out
}

// Subscribe exposes the publish stream for the embedding UI. The channel is
// closed when the bus closes.
func (b *Bus) Subscribe() <-chan Message {
	return b.events
}

// Close stops all expiry timers and closes the event stream. Further
// publishes become no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.active = nil
	close(b.events)
}

func (b *Bus) expire(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.removeLocked(id)
	if b.onExpire != nil {
		b.onExpire(id)
	}
}

func (b *Bus) removeLocked(id uuid.UUID) {
	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}
	for i, msg := range b.active {
		if msg.ID == id {
			b.active = append(b.active[:i], b.active[i+1:]...)
			return
		}
	}
}
