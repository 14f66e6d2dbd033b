package web

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body. It is the only place
// success bodies are produced; every handler path writes exactly one
// response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// respondInternalError logs the underlying error and sends the client a
// generic message; detail never leaks to the response.
func (s *Server) respondInternalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// decodePayload reads the request body as a JSON object. Numbers are
// kept as json.Number so validators can distinguish integers from
// fractions.
func decodePayload(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
