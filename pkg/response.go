package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals v and writes it with the given status code.
// A marshal failure is answered with 500.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	vJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response %T: %s", v, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, vJson, statusCode)
}
