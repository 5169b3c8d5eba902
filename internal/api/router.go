package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "pdf-chat/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"pdf-chat/internal/session"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, pageHandler *PageHandler, sessions *session.Manager) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- Session Routes ---
	// Everything below acts on the caller's in-memory session.
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(sessions))

		// HTML page and its form actions.
		r.Get("/", pageHandler.Index)
		r.Route("/ui", func(r chi.Router) {
			r.Post("/conversations", pageHandler.CreateConversation)
			r.Post("/conversations/select", pageHandler.SelectConversation)
			r.Post("/document", pageHandler.UploadDocument)
			r.Post("/tone", pageHandler.UpdateTone)
			r.Post("/ask", pageHandler.SubmitQuery)
		})

		r.Route("/api/v1", func(r chi.Router) {
			// Quick state reads and changes get a request timeout.
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(60 * time.Second))

				r.Get("/session", chatHandler.GetSession)
				r.Get("/settings", chatHandler.GetSettings)
				r.Put("/settings", chatHandler.UpdateSettings)

				r.Post("/conversations", chatHandler.CreateConversation)
				r.Put("/conversations/active", chatHandler.SelectConversation)
				r.Get("/conversations/{conversationID}", chatHandler.GetConversation)
			})

			// Uploads and completions may take as long as the PDF parser or
			// the completion API need; they are bounded only by the client.
			r.Group(func(r chi.Router) {
				r.Post("/document", chatHandler.UploadDocument)
				r.Post("/conversations/active/messages", chatHandler.SubmitQuery)
			})
		})
	})

	return r
}
