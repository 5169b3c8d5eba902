package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"pdf-chat/internal/interfaces"
	"pdf-chat/internal/model"
	"pdf-chat/internal/session"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler serves the HTML page. Every form post applies one action to the
// session and redirects back to the page, which re-renders the whole state.
type PageHandler struct {
	chat           interfaces.ChatService
	settings       interfaces.SettingsService
	maxUploadBytes int64
}

func NewPageHandler(chat interfaces.ChatService, settings interfaces.SettingsService, maxUploadBytes int64) *PageHandler {
	return &PageHandler{chat: chat, settings: settings, maxUploadBytes: maxUploadBytes}
}

// Index renders the page for the caller's session.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		h.renderError(w, err)
		return
	}
	view, err := h.chat.View(r.Context(), st)
	if err != nil {
		h.renderError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		slog.Error("Failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Failed to write page", "error", err)
	}
}

func (h *PageHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(st *session.State) {
		if _, err := h.chat.CreateConversation(r.Context(), st); err != nil {
			h.notifyError(st, err)
		}
	})
}

func (h *PageHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(st *session.State) {
		if err := h.chat.SelectConversation(r.Context(), st, r.PostFormValue("id")); err != nil {
			h.notifyError(st, err)
		}
	})
}

func (h *PageHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(st *session.State) {
		name, file, err := readUpload(w, r, h.maxUploadBytes)
		if err != nil {
			h.notifyError(st, err)
			return
		}
		defer file.Close()

		if _, err := h.chat.UploadDocument(r.Context(), st, name, file); err != nil {
			h.notifyError(st, err)
			return
		}
		h.chat.Notify(st, model.NoticeSuccess, "PDF uploaded and analysed successfully.")
	})
}

func (h *PageHandler) UpdateTone(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(st *session.State) {
		req := UpdateSettingsRequest{Tone: r.PostFormValue("tone")}
		if err := validateRequest(&req); err != nil {
			h.notifyError(st, err)
			return
		}
		h.settings.SaveTone(r.Context(), st, req.Tone)
		h.chat.Notify(st, model.NoticeSuccess, "Tone of voice updated.")
	})
}

func (h *PageHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(st *session.State) {
		query := strings.TrimSpace(r.PostFormValue("query"))
		if query == "" {
			return
		}
		req := SubmitQueryRequest{Query: query}
		if err := validateRequest(&req); err != nil {
			h.notifyError(st, err)
			return
		}
		result, err := h.chat.SubmitQuery(r.Context(), st, req.Query)
		if err != nil {
			h.notifyError(st, err)
			return
		}
		if result.Advisory {
			h.chat.Notify(st, model.NoticeAdvisory, result.Reply)
		}
	})
}

// act runs fn against the caller's session and redirects to the page.
func (h *PageHandler) act(w http.ResponseWriter, r *http.Request, fn func(st *session.State)) {
	st, err := sessionFrom(r)
	if err != nil {
		h.renderError(w, err)
		return
	}
	fn(st)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) notifyError(st *session.State, err error) {
	_, message := clientError(err)
	slog.Warn("Interaction failed", "session_id", st.ID, "client_message", message, "internal_error", err)
	h.chat.Notify(st, model.NoticeError, message)
}

func (h *PageHandler) renderError(w http.ResponseWriter, err error) {
	code, message := clientError(err)
	slog.Error("Failed to serve page", "status_code", code, "internal_error", err)
	http.Error(w, message, code)
}
