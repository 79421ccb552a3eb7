package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mansakrishna23/simple-message-bank/logger"
	"github.com/mansakrishna23/simple-message-bank/repositories"
)

// SystemHandler handles operational endpoints
type SystemHandler struct {
	messageRepo repositories.MessageRepository
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(messageRepo repositories.MessageRepository) *SystemHandler {
	return &SystemHandler{messageRepo: messageRepo}
}

// GetHealth reports whether the store answers, along with its row count.
func (h *SystemHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	count, err := h.messageRepo.Count(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Warn("Health check failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "messages": count})
}
