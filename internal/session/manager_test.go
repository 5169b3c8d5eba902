package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-chat/internal/document"
	"pdf-chat/internal/model"
)

func newTestManager(idle time.Duration) (*Manager, *time.Time) {
	clock := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := NewManager(idle, func(id string) *State {
		return New(id, document.NewPDFExtractor(), "tone")
	})
	m.now = func() time.Time { return clock }
	return m, &clock
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	st := m.Create()
	require.NotNil(t, st)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "tone", st.Tone)
	assert.False(t, st.Document.Loaded())

	got, ok := m.Get(st.ID)
	require.True(t, ok)
	assert.Same(t, st, got)

	_, ok = m.Get("unknown")
	assert.False(t, ok)

	other := m.Create()
	assert.NotEqual(t, st.ID, other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManager_IdleExpiry(t *testing.T) {
	m, clock := newTestManager(time.Hour)
	stale := m.Create()

	*clock = clock.Add(30 * time.Minute)
	fresh := m.Create()

	*clock = clock.Add(45 * time.Minute)
	assert.Equal(t, 1, m.Sweep())

	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}

func TestManager_GetDropsExpiredSession(t *testing.T) {
	m, clock := newTestManager(time.Minute)
	st := m.Create()

	*clock = clock.Add(2 * time.Minute)
	_, ok := m.Get(st.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	m, _ := newTestManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestState_Notice(t *testing.T) {
	st := New("id", document.NewPDFExtractor(), "tone")
	assert.Nil(t, st.TakeNotice())

	st.SetNotice(model.NoticeSuccess, "done")
	assert.Equal(t, &model.Notice{Kind: model.NoticeSuccess, Text: "done"}, st.TakeNotice())
	assert.Nil(t, st.TakeNotice(), "notices are shown once")
}

func TestContext(t *testing.T) {
	st := New("id", document.NewPDFExtractor(), "tone")
	ctx := NewContext(context.Background(), st)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, st, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
