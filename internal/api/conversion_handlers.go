package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/uci2pgn/internal/errors"
	"github.com/vytor/uci2pgn/internal/logger"
	"github.com/vytor/uci2pgn/internal/models"
	"github.com/vytor/uci2pgn/internal/services"
	"github.com/vytor/uci2pgn/internal/uci"
)

type convertRequest struct {
	Moves   []string `json:"moves"`
	Opening *bool    `json:"opening,omitempty"`
}

// handleConvert accepts either a JSON body {"moves": [...]} or plain text with
// one UCI move per line.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes()))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("request body too large or unreadable"))
		return
	}

	opts := services.ConvertOptions{Opening: s.DetectOpening}
	if q := r.URL.Query().Get("opening"); q != "" {
		if v, err := strconv.ParseBool(q); err == nil {
			opts.Opening = v
		}
	}

	var tokens []string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req convertRequest
		if err := json.Unmarshal(body, &req); err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
			return
		}
		tokens = req.Moves
		if tokens == nil {
			tokens = []string{}
		}
		if req.Opening != nil {
			opts.Opening = *req.Opening
		}
	} else {
		tokens = uci.SplitInput(string(body))
	}
	log.Debug("convert request: %d tokens", len(tokens))

	conv, err := s.ConversionService.Convert(r.Context(), tokens, opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, conv)
}

func (s *Server) handleListConversions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ConversionFilter{
		ECOCode:  q.Get("eco"),
		OrderDir: q.Get("order"),
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset, "min_plies": &filter.MinPlies} {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				handleError(w, r, errors.NewBadRequestError(key+" must be an integer"))
				return
			}
			*dst = n
		}
	}

	list, err := s.ConversionService.History(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"conversions": list})
}

func (s *Server) handleGetConversion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid conversion id"))
		return
	}

	conv, err := s.ConversionService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, conv)
}

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
