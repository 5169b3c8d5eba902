package service

import (
	"context"
	"log/slog"
	"strings"

	"pdf-chat/internal/session"
)

// Settings are the per-session generation settings. Only the tone is
// editable; model and budget come from configuration.
type Settings struct {
	Tone        string `json:"tone"`
	Model       string `json:"model"`
	TokenBudget int    `json:"token_budget"`
}

type SettingsService struct {
	defaultTone string
	model       string
	tokenBudget int
}

func NewSettingsService(defaultTone, modelName string, tokenBudget int) *SettingsService {
	return &SettingsService{defaultTone: defaultTone, model: modelName, tokenBudget: tokenBudget}
}

// DefaultTone is the tone a new session starts with.
func (s *SettingsService) DefaultTone() string { return s.defaultTone }

// Get returns the session's current settings.
func (s *SettingsService) Get(_ context.Context, st *session.State) *Settings {
	st.Lock()
	defer st.Unlock()
	return s.snapshot(st)
}

// SaveTone replaces the session's tone. A blank tone restores the default.
func (s *SettingsService) SaveTone(ctx context.Context, st *session.State, tone string) *Settings {
	st.Lock()
	defer st.Unlock()

	tone = strings.TrimSpace(tone)
	if tone == "" {
		tone = s.defaultTone
	}
	st.Tone = tone
	slog.InfoContext(ctx, "Tone updated", "session_id", st.ID)
	return s.snapshot(st)
}

func (s *SettingsService) snapshot(st *session.State) *Settings {
	return &Settings{Tone: st.Tone, Model: s.model, TokenBudget: s.tokenBudget}
}
