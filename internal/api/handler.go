package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "pdf-chat/internal/errors"
	"pdf-chat/internal/interfaces"
)

// ChatHandler serves the JSON API for one browser session.
type ChatHandler struct {
	chat           interfaces.ChatService
	settings       interfaces.SettingsService
	maxUploadBytes int64
}

func NewChatHandler(chat interfaces.ChatService, settings interfaces.SettingsService, maxUploadBytes int64) *ChatHandler {
	return &ChatHandler{chat: chat, settings: settings, maxUploadBytes: maxUploadBytes}
}

// GetSession godoc
// @Summary      Get the session view
// @Description  Returns the conversations, the active conversation with its messages, the loaded document and the tone.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  model.SessionView
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/session [get]
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	view, err := h.chat.View(r.Context(), st)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// CreateConversation godoc
// @Summary      Create a conversation
// @Description  Appends a new empty conversation labelled "Chat N" and makes it active.
// @Tags         Conversations
// @Produce      json
// @Success      201  {object}  CreateConversationResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/conversations [post]
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	id, err := h.chat.CreateConversation(r.Context(), st)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, CreateConversationResponse{ID: id})
}

// GetConversation godoc
// @Summary      Get a conversation
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation label"
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [get]
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	conv, err := h.chat.GetConversation(r.Context(), st, chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// SelectConversation godoc
// @Summary      Select the active conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        request  body  SelectConversationRequest  true  "Conversation to activate"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/active [put]
func (h *ChatHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req SelectConversationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.chat.SelectConversation(r.Context(), st, req.ID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SubmitQuery godoc
// @Summary      Ask a question about the document
// @Description  Answers in the active conversation and records the exchange. When no document is loaded the reply is an advisory and nothing is recorded.
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        request  body  SubmitQueryRequest  true  "Question"
// @Success      200  {object}  service.QueryResult
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/conversations/active/messages [post]
func (h *ChatHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req SubmitQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	result, err := h.chat.SubmitQuery(r.Context(), st, req.Query)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// UploadDocument godoc
// @Summary      Upload the PDF document
// @Description  Replaces the session's document with the uploaded PDF. All conversations share it.
// @Tags         Document
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file"
// @Success      200  {object}  model.DocumentInfo
// @Failure      400  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /v1/document [post]
func (h *ChatHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	name, file, err := readUpload(w, r, h.maxUploadBytes)
	if err != nil {
		respondWithError(w, err)
		return
	}
	defer file.Close()

	info, err := h.chat.UploadDocument(r.Context(), st, name, file)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

// GetSettings godoc
// @Summary      Get generation settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Router       /v1/settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.settings.Get(r.Context(), st))
}

// UpdateSettings godoc
// @Summary      Update the tone of voice
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request  body  UpdateSettingsRequest  true  "New tone"
// @Success      200  {object}  service.Settings
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/settings [put]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondWithJSON(w, http.StatusOK, h.settings.SaveTone(r.Context(), st, req.Tone))
}

// decodeAndValidate decodes the JSON body into req and validates it, writing
// the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		slog.Debug("Invalid JSON payload", "path", r.URL.Path, "error", err)
		respondWithError(w, app_errors.ErrValidation)
		return false
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return false
	}
	return true
}
