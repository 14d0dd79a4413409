package fitapi

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// RespondError translates a core API call failure into a browser-facing
// response: 401 when the session is gone, the upstream status and message
// verbatim for 4xx business rejections, 502 for everything else.
func RespondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionExpired) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
		return
	}

	log.Errorf("core api call: %s", err)
	http.Error(w, "core api unavailable", http.StatusBadGateway)
}
