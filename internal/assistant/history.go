package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novamart-dev/storefront-session/pkg/config"
	"github.com/novamart-dev/storefront-session/pkg/enums"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/logger"
	"github.com/novamart-dev/storefront-session/pkg/storage"
)

const (
	greetingText = "Hi! 👋 I'm your AI Assistant. How can I help you today?"
	clearedText  = "Chat cleared. How can I help now?"
)

// Message is one chat widget entry. The JSON shape matches the persisted
// snapshot.
type Message struct {
	ID        uuid.UUID           `json:"id"`
	Text      string              `json:"text"`
	Sender    enums.AssistantRole `json:"sender"`
	CreatedAt time.Time           `json:"created_at"`
}

// History owns the chat widget's message list. It hydrates from the
// persistence adapter, reseeds the greeting when empty, caps its length by
// dropping the oldest entries, and persists after every change with the
// same fail-open contract as the cart.
type History struct {
	logg  *logger.Logger
	store storage.Store
	limit int

	messages []Message
}

// NewHistory wires a chat history over the given persistence adapter.
func NewHistory(adapter storage.Store, cfg config.AssistantConfig, logg *logger.Logger) (*History, error) {
	if adapter == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "persistence adapter required")
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = 50
	}
	return &History{logg: logg, store: adapter, limit: limit}, nil
}

// Hydrate loads the persisted conversation, seeding the greeting when the
// snapshot is missing, corrupt, or empty.
func (h *History) Hydrate(ctx context.Context) {
	messages, err := storage.LoadJSON(ctx, h.store, storage.KeyAssistantMessages, []Message(nil))
	if err != nil {
		if h.logg != nil {
			h.logg.Error(ctx, "hydrate chat history", err)
		}
		messages = nil
	}

	kept := messages[:0]
	for _, msg := range messages {
		if msg.Text == "" || !msg.Sender.IsValid() {
			continue
		}
		kept = append(kept, msg)
	}
	h.messages = kept
	if len(h.messages) == 0 {
		h.seed(ctx, greetingText)
	}
}

// Append records a message and persists the capped conversation.
func (h *History) Append(ctx context.Context, role enums.AssistantRole, text string) (Message, error) {
	if !role.IsValid() {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid message sender")
	}
	if text == "" {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}

	msg := Message{
		ID:        uuid.New(),
		Text:      text,
		Sender:    role,
		CreatedAt: time.Now(),
	}
	h.messages = append(h.messages, msg)
	if overflow := len(h.messages) - h.limit; overflow > 0 {
		h.messages = append([]Message(nil), h.messages[overflow:]...)
	}
	h.persist(ctx)
	return msg, nil
}

// Delete removes a single message; unknown ids are ignored.
func (h *History) Delete(ctx context.Context, id uuid.UUID) {
	for i, msg := range h.messages {
		if msg.ID == id {
			h.messages = append(h.messages[:i], h.messages[i+1:]...)
			h.persist(ctx)
			return
		}
	}
}

// Clear drops the conversation and reseeds the post-clear prompt.
func (h *History) Clear(ctx context.Context) {
	h.messages = nil
	h.seed(ctx, clearedText)
}

// Messages returns a copy of the conversation in order.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *History) seed(ctx context.Context, text string) {
	h.messages = []Message{{
		ID:        uuid.New(),
		Text:      text,
		Sender:    enums.AssistantRoleAssistant,
		CreatedAt: time.Now(),
	}}
	h.persist(ctx)
}

func (h *History) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, h.store, storage.KeyAssistantMessages, h.messages); err != nil && h.logg != nil {
		h.logg.Error(h.logg.WithStorageKey(ctx, storage.KeyAssistantMessages), "persist chat history", err)
	}
}
