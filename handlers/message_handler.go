package handlers

import (
	"net/http"

	"github.com/mansakrishna23/simple-message-bank/dto"
	"github.com/mansakrishna23/simple-message-bank/logger"
	"github.com/mansakrishna23/simple-message-bank/monitoring"
)

type submitPage struct {
	Form   dto.SubmitForm
	Thanks bool
	Error  bool
}

type viewPage struct {
	Messages []dto.MessageDTO
}

// SubmitForm renders the empty submission form.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageSubmit, submitPage{})
}

// Submit stores a posted message and re-renders the form. Missing fields
// re-render the form with the error flag set and nothing is written.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	form, err := dto.SubmitFormFromRequest(r)
	if err != nil {
		log.WithError(err).Warn("Malformed submission body")
		monitoring.MessagePostFailure.WithLabelValues("malformed").Inc()
		h.render(w, r, http.StatusBadRequest, pageSubmit, submitPage{Error: true})
		return
	}
	if err := form.Validate(); err != nil {
		monitoring.MessagePostFailure.WithLabelValues("validation").Inc()
		h.render(w, r, http.StatusBadRequest, pageSubmit, submitPage{Form: form, Error: true})
		return
	}

	if err := h.messageRepo.Create(r.Context(), form.ToModel()); err != nil {
		log.WithError(err).Error("Failed to store message")
		monitoring.MessagePostFailure.WithLabelValues("storage").Inc()
		h.renderError(w, r, err)
		return
	}

	monitoring.MessagesPosted.Inc()
	h.render(w, r, http.StatusOK, pageSubmit, submitPage{Thanks: true})
}

// View lists a random sample of stored messages in the order the store
// returned them.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageRepo.SampleRandom(r.Context(), h.sampleSize)
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Error("Failed to sample messages")
		monitoring.MessageFetchFailure.WithLabelValues("storage").Inc()
		h.renderError(w, r, err)
		return
	}

	monitoring.MessagesSampled.Add(float64(len(messages)))
	h.render(w, r, http.StatusOK, pageView, viewPage{Messages: dto.FromModels(messages)})
}
