package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	app_errors "pdf-chat/internal/errors"
	"pdf-chat/internal/session"
)

// SessionCookieName is the cookie holding the browser session id.
const SessionCookieName = "pdfchat_session"

// SessionMiddleware attaches the caller's session to the request context,
// starting a new one when the cookie is missing or the session has expired.
func SessionMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var st *session.State
			if c, err := r.Cookie(SessionCookieName); err == nil {
				st, _ = sessions.Get(c.Value)
			}
			if st == nil {
				st = sessions.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    st.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), st)))
		})
	}
}

// sessionFrom returns the request's session. Routes are always mounted behind
// SessionMiddleware, so a missing session is a wiring error.
func sessionFrom(r *http.Request) (*session.State, error) {
	st, ok := session.FromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("%w: request carries no session", app_errors.ErrInternal)
	}
	return st, nil
}

// readUpload extracts the "file" part of a multipart upload, enforcing the
// size limit and the .pdf extension. The caller closes the returned file.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (string, multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, fmt.Errorf("%w: file exceeds the %d byte upload limit", app_errors.ErrValidation, maxBytes)
		}
		return "", nil, fmt.Errorf("%w: invalid multipart form: %v", app_errors.ErrValidation, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: field 'file' is required", app_errors.ErrValidation)
	}
	name := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		_ = file.Close()
		return "", nil, fmt.Errorf("%w: only .pdf files are accepted", app_errors.ErrValidation)
	}
	return name, file, nil
}
