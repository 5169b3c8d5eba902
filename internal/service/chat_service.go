package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	app_errors "pdf-chat/internal/errors"
	"pdf-chat/internal/model"
	"pdf-chat/internal/repository"
	"pdf-chat/internal/session"
)

// AdvisoryNoDocument is returned in place of an answer when a question is
// asked before any document was uploaded.
const AdvisoryNoDocument = "Please upload a PDF document first."

// ChatService is the session controller: each method is one user action
// applied to one session, holding the session lock throughout.
type ChatService struct {
	generator   *AnswerGenerator
	tokenBudget int
}

// QueryResult is the outcome of one submitted question.
type QueryResult struct {
	ConversationID string `json:"conversation_id"`
	Query          string `json:"query"`
	Reply          string `json:"reply"`
	// Advisory is set when Reply is a hint to the user rather than an answer;
	// nothing was appended to the conversation in that case.
	Advisory bool `json:"advisory"`
}

func NewChatService(generator *AnswerGenerator, tokenBudget int) *ChatService {
	return &ChatService{generator: generator, tokenBudget: tokenBudget}
}

// CreateConversation adds a new empty conversation and makes it active.
func (s *ChatService) CreateConversation(ctx context.Context, st *session.State) (string, error) {
	st.Lock()
	defer st.Unlock()

	conv, err := st.Conversations.CreateConversation(ctx)
	if err != nil {
		return "", fmt.Errorf("could not create conversation: %w", err)
	}
	slog.InfoContext(ctx, "Conversation created", "session_id", st.ID, "conversation_id", conv.ID)
	return conv.ID, nil
}

// SelectConversation makes the conversation with the given id active.
func (s *ChatService) SelectConversation(ctx context.Context, st *session.State, id string) error {
	st.Lock()
	defer st.Unlock()

	if err := st.Conversations.SetActive(ctx, id); err != nil {
		return translateRepoError(err)
	}
	return nil
}

// GetConversation returns one conversation with all of its messages.
func (s *ChatService) GetConversation(ctx context.Context, st *session.State, id string) (*model.Conversation, error) {
	st.Lock()
	defer st.Unlock()

	conv, err := st.Conversations.GetConversation(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return conv, nil
}

// UploadDocument replaces the session's document with the PDF read from r.
func (s *ChatService) UploadDocument(ctx context.Context, st *session.State, name string, r io.Reader) (*model.DocumentInfo, error) {
	st.Lock()
	defer st.Unlock()

	info, err := st.Document.Load(ctx, name, r)
	if err != nil {
		slog.WarnContext(ctx, "Document upload rejected", "session_id", st.ID, "name", name, "error", err)
		return nil, err
	}
	return info, nil
}

// SubmitQuery answers query against the session's document in the active
// conversation and records the exchange. A missing document yields an
// advisory result; a failed completion call leaves the conversation untouched.
func (s *ChatService) SubmitQuery(ctx context.Context, st *session.State, query string) (*QueryResult, error) {
	st.Lock()
	defer st.Unlock()

	activeID, ok := st.Conversations.ActiveID(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no active conversation, create or select one first", app_errors.ErrConflict)
	}
	conv, err := st.Conversations.GetConversation(ctx, activeID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	history := TruncateHistory(conv.Messages, s.tokenBudget)
	if dropped := len(conv.Messages) - len(history); dropped > 0 {
		slog.DebugContext(ctx, "History truncated", "conversation_id", activeID, "dropped", dropped, "kept", len(history))
	}

	reply, err := s.generator.Generate(ctx, st.Document.Text(), st.Tone, history, query)
	if errors.Is(err, app_errors.ErrDocumentMissing) {
		return &QueryResult{ConversationID: activeID, Query: query, Reply: AdvisoryNoDocument, Advisory: true}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "Answer generation failed", "session_id", st.ID, "conversation_id", activeID, "error", err)
		return nil, err
	}

	if err := st.Conversations.AppendExchange(ctx, activeID, query, reply); err != nil {
		return nil, translateRepoError(err)
	}
	return &QueryResult{ConversationID: activeID, Query: query, Reply: reply}, nil
}

// View snapshots the session for rendering and consumes its pending notice.
func (s *ChatService) View(ctx context.Context, st *session.State) (*model.SessionView, error) {
	st.Lock()
	defer st.Unlock()

	summaries, err := st.Conversations.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	view := &model.SessionView{
		Conversations: summaries,
		Document:      st.Document.Current(),
		Tone:          st.Tone,
		Notice:        st.TakeNotice(),
	}
	if id, ok := st.Conversations.ActiveID(ctx); ok {
		active, err := st.Conversations.GetConversation(ctx, id)
		if err != nil {
			return nil, translateRepoError(err)
		}
		view.Active = active
	}
	return view, nil
}

// Notify queues a one-shot notice for the next page render.
func (s *ChatService) Notify(st *session.State, kind model.NoticeKind, text string) {
	st.Lock()
	defer st.Unlock()
	st.SetNotice(kind, text)
}

func translateRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", app_errors.ErrNotFound, err)
	}
	return err
}
