package api

import (
	"net/http"

	"github.com/vytor/uci2pgn/internal/errors"
	"github.com/vytor/uci2pgn/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		// Wrap unknown errors as internal errors
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	body := map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if appErr.Ply > 0 {
		body["ply"] = appErr.Ply
		body["token"] = appErr.Token
	}
	writeJSON(w, r, appErr.Status, map[string]any{"error": body})
}
