package repository

import (
	"context"

	"pdf-chat/internal/model"
)

// ConversationRepository defines the storage operations for one session's
// conversations. Implementations return copies, so callers can never mutate
// stored messages.
type ConversationRepository interface {
	// CreateConversation appends an empty conversation labelled
	// "Chat <count+1>" and makes it the active one.
	CreateConversation(ctx context.Context) (*model.Conversation, error)
	GetConversation(ctx context.Context, id string) (*model.Conversation, error)
	ListConversations(ctx context.Context) ([]model.ConversationSummary, error)

	SetActive(ctx context.Context, id string) error
	// ActiveID returns the active conversation id and false when none is set.
	ActiveID(ctx context.Context) (string, bool)

	// AppendExchange appends a user message followed by an assistant message.
	AppendExchange(ctx context.Context, id, userText, assistantText string) error
}
