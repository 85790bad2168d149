package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rshade/carbonfocus/internal/input"
)

// apiVersion is reported in every envelope.
const apiVersion = 1

// Response is the envelope around every payload.
type Response struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
	Data        any    `json:"data,omitempty"`
}

func (s *Server) envelope(code int, text string, data any) Response {
	return Response{
		Code:        code,
		CurrentTime: s.now().UnixMilli(),
		Text:        text,
		Version:     apiVersion,
		Data:        data,
	}
}

func (s *Server) sendResponse(w http.ResponseWriter, r *http.Request, code int, data any) {
	s.write(w, r, s.envelope(code, http.StatusText(code), data))
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().
			Ctx(r.Context()).
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

// errorResponse writes code with err's message as the text. Validation
// errors carry their field list as data.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, code int, err error) {
	var data any
	var verr *input.ValidationError
	if errors.As(err, &verr) {
		data = verr.Fields
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error().Ctx(r.Context()).Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		s.logger.Debug().Ctx(r.Context()).Err(err).Str("path", r.URL.Path).Int("code", code).Msg("request rejected")
	}

	s.write(w, r, s.envelope(code, err.Error(), data))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, s.envelope(http.StatusNotFound, "resource not found", nil))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, s.envelope(http.StatusMethodNotAllowed, "method not allowed", nil))
}
