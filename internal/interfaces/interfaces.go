package interfaces

import (
	"context"
	"io"

	"pdf-chat/internal/model"
	"pdf-chat/internal/service"
	"pdf-chat/internal/session"
)

// The API layer depends on these interfaces rather than on the concrete
// services, which lets handler tests run against generated mocks.

// ChatService defines the contract for the session controller.
type ChatService interface {
	CreateConversation(ctx context.Context, st *session.State) (string, error)
	SelectConversation(ctx context.Context, st *session.State, id string) error
	GetConversation(ctx context.Context, st *session.State, id string) (*model.Conversation, error)
	UploadDocument(ctx context.Context, st *session.State, name string, r io.Reader) (*model.DocumentInfo, error)
	SubmitQuery(ctx context.Context, st *session.State, query string) (*service.QueryResult, error)
	View(ctx context.Context, st *session.State) (*model.SessionView, error)
	Notify(st *session.State, kind model.NoticeKind, text string)
}

// SettingsService defines the contract for per-session generation settings.
type SettingsService interface {
	DefaultTone() string
	Get(ctx context.Context, st *session.State) *service.Settings
	SaveTone(ctx context.Context, st *session.State, tone string) *service.Settings
}

var (
	_ ChatService     = (*service.ChatService)(nil)
	_ SettingsService = (*service.SettingsService)(nil)
)
