package repository

import (
	"context"
	"fmt"

	"pdf-chat/internal/model"
)

type memoryRepository struct {
	byID     map[string]*model.Conversation
	order    []string
	activeID string
}

// NewMemoryRepository returns an empty in-memory ConversationRepository.
// It is not safe for concurrent use; the owning session serializes access.
func NewMemoryRepository() ConversationRepository {
	return &memoryRepository{byID: make(map[string]*model.Conversation)}
}

func (r *memoryRepository) CreateConversation(_ context.Context) (*model.Conversation, error) {
	// Labels follow the count, skipping forward should one ever be taken.
	n := len(r.order) + 1
	id := fmt.Sprintf("Chat %d", n)
	for r.byID[id] != nil {
		n++
		id = fmt.Sprintf("Chat %d", n)
	}

	conv := &model.Conversation{ID: id, Messages: []model.Message{}}
	r.byID[id] = conv
	r.order = append(r.order, id)
	r.activeID = id
	return copyConversation(conv), nil
}

func (r *memoryRepository) GetConversation(_ context.Context, id string) (*model.Conversation, error) {
	conv, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("conversation %q: %w", id, ErrNotFound)
	}
	return copyConversation(conv), nil
}

func (r *memoryRepository) ListConversations(_ context.Context) ([]model.ConversationSummary, error) {
	summaries := make([]model.ConversationSummary, 0, len(r.order))
	for _, id := range r.order {
		summaries = append(summaries, model.ConversationSummary{
			ID:           id,
			MessageCount: len(r.byID[id].Messages),
			Active:       id == r.activeID,
		})
	}
	return summaries, nil
}

func (r *memoryRepository) SetActive(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("conversation %q: %w", id, ErrNotFound)
	}
	r.activeID = id
	return nil
}

func (r *memoryRepository) ActiveID(_ context.Context) (string, bool) {
	return r.activeID, r.activeID != ""
}

func (r *memoryRepository) AppendExchange(_ context.Context, id, userText, assistantText string) error {
	conv, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("conversation %q: %w", id, ErrNotFound)
	}
	conv.Messages = append(conv.Messages,
		model.Message{Role: model.RoleUser, Content: userText},
		model.Message{Role: model.RoleAssistant, Content: assistantText},
	)
	return nil
}

func copyConversation(c *model.Conversation) *model.Conversation {
	msgs := make([]model.Message, len(c.Messages))
	copy(msgs, c.Messages)
	return &model.Conversation{ID: c.ID, Messages: msgs}
}
