package transport

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success shape shared by every endpoint: {ok:true} plus
// whatever payload keys the route contributes (data, count, stats, ...).
type Envelope map[string]interface{}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteData writes {ok:true, data:...}.
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, Envelope{"ok": true, "data": data})
}

// WriteOK writes the bare {ok:true} acknowledgement.
func WriteOK(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, Envelope{"ok": true})
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
