package session

import (
	"context"
	"sync"

	"pdf-chat/internal/document"
	"pdf-chat/internal/model"
	"pdf-chat/internal/repository"
)

// State is everything one browser session owns. Handlers must hold the lock
// for the whole interaction; interactions of one session never overlap.
type State struct {
	sync.Mutex

	ID            string
	Conversations repository.ConversationRepository
	Document      *document.Store
	Tone          string

	notice *model.Notice
}

// New returns a session with no conversations, no document and the given tone.
func New(id string, extractor document.TextExtractor, tone string) *State {
	return &State{
		ID:            id,
		Conversations: repository.NewMemoryRepository(),
		Document:      document.NewStore(extractor, ""),
		Tone:          tone,
	}
}

// SetNotice stores a message to show on the next page render.
func (s *State) SetNotice(kind model.NoticeKind, text string) {
	s.notice = &model.Notice{Kind: kind, Text: text}
}

// TakeNotice returns the pending notice, if any, and clears it.
func (s *State) TakeNotice() *model.Notice {
	n := s.notice
	s.notice = nil
	return n
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying st.
func NewContext(ctx context.Context, st *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*State, bool) {
	st, ok := ctx.Value(ctxKey{}).(*State)
	return st, ok
}
