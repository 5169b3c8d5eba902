package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pdf-chat/internal/service"
	"pdf-chat/internal/session"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	settingsService := service.NewSettingsService("Respond clearly and professionally.", "gpt-4-turbo", 4000)
	st := session.New("s", stubExtractor{}, settingsService.DefaultTone())

	t.Run("Get returns the session tone and configured values", func(t *testing.T) {
		got := settingsService.Get(ctx, st)
		assert.Equal(t, &service.Settings{
			Tone:        "Respond clearly and professionally.",
			Model:       "gpt-4-turbo",
			TokenBudget: 4000,
		}, got)
	})

	t.Run("SaveTone trims and stores", func(t *testing.T) {
		got := settingsService.SaveTone(ctx, st, "  Answer like a pirate.  ")
		assert.Equal(t, "Answer like a pirate.", got.Tone)
		assert.Equal(t, "Answer like a pirate.", st.Tone)
	})

	t.Run("Blank tone restores the default", func(t *testing.T) {
		got := settingsService.SaveTone(ctx, st, "   ")
		assert.Equal(t, "Respond clearly and professionally.", got.Tone)
	})
}
