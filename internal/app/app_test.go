package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-chat/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:            0,
		OpenAIAPIKey:       "sk-test",
		OpenAIModel:        "gpt-4-turbo",
		TokenBudget:        4000,
		DefaultTone:        config.DefaultTone,
		MaxUploadBytes:     1 << 20,
		SessionIdleTimeout: time.Hour,
		LogLevel:           "DEBUG",
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NotNil(t, app.Server)
	assert.NotNil(t, app.Sessions)
	assert.Equal(t, ":0", app.Server.Addr)
	assert.Zero(t, app.Server.WriteTimeout)
}

func TestNewApp_NilConfig(t *testing.T) {
	app, err := NewApp(nil)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApp_RoutesWired(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, app.Sessions.Len())

	var cookieSet bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "pdfchat_session" {
			cookieSet = true
		}
	}
	assert.True(t, cookieSet, "a new session cookie should be issued")
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig()
	app, err := NewApp(cfg)
	require.NoError(t, err)
	app.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
