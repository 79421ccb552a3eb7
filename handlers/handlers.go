package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mansakrishna23/simple-message-bank/logger"
	"github.com/mansakrishna23/simple-message-bank/models"
	"github.com/mansakrishna23/simple-message-bank/repositories"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome   = "home.html"
	pageSubmit = "submit.html"
	pageView   = "view.html"
	pageError  = "error.html"
)

type Handler struct {
	messageRepo repositories.MessageRepository
	sampleSize  int
	pages       map[string]*template.Template
}

// NewHandler parses the page templates up front so a broken template fails
// at startup rather than on a request.
func NewHandler(messageRepo repositories.MessageRepository, sampleSize int) (*Handler, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageHome, pageSubmit, pageView, pageError} {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		messageRepo: messageRepo,
		sampleSize:  sampleSize,
		pages:       pages,
	}, nil
}

// Home renders the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageHome, nil)
}

type errorPage struct {
	Title  string
	Detail string
}

// render executes the page into a buffer first so a template failure can
// still be answered with a clean error response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "base", data); err != nil {
		logger.FromContext(r.Context()).WithError(err).WithField("page", page).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).WithError(err).Debug("Client went away mid-response")
	}
}

// renderError maps a storage error to a status code and a generic page.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	page := errorPage{
		Title:  "Something went wrong",
		Detail: "We could not complete your request. Please try again later.",
	}
	if errors.Is(err, models.ErrStorageUnavailable) {
		status = http.StatusServiceUnavailable
		page.Title = "Message bank unavailable"
	}
	h.render(w, r, status, pageError, page)
}
