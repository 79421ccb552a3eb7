package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mansakrishna23/simple-message-bank/handlers"
	"github.com/mansakrishna23/simple-message-bank/logger"
	"github.com/mansakrishna23/simple-message-bank/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(handler *handlers.Handler, systemHandler *handlers.SystemHandler) http.Handler {
	router := mux.NewRouter()
	router.Use(logger.RequestID, logger.AccessLog, monitoring.InstrumentHandler)

	// mux skips middleware for requests no route matched.
	router.NotFoundHandler = withMiddleware(http.NotFoundHandler())
	router.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	// Board routes; the trailing-slash forms are kept for old links.
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	for _, path := range []string{"/submit", "/submit/"} {
		router.HandleFunc(path, handler.SubmitForm).Methods(http.MethodGet)
		router.HandleFunc(path, handler.Submit).Methods(http.MethodPost)
	}
	router.HandleFunc("/view", handler.View).Methods(http.MethodGet)
	router.HandleFunc("/view/", handler.View).Methods(http.MethodGet)

	// System routes
	router.HandleFunc("/healthz", systemHandler.GetHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func withMiddleware(h http.Handler) http.Handler {
	return logger.RequestID(logger.AccessLog(monitoring.InstrumentHandler(h)))
}
