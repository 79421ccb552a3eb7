package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	MessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messages_posted_total",
		Help: "Total messages successfully posted",
	})

	MessagePostFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "message_post_failure_total",
		Help: "Total rejected or failed message submissions",
	}, []string{"reason"})

	MessageFetchFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "message_fetch_failure_total",
		Help: "Total failed message sample reads",
	}, []string{"reason"})

	MessagesSampled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messages_sampled_total",
		Help: "Total messages returned by random samples",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(MessagesPosted)
	prometheus.MustRegister(MessagePostFailure)
	prometheus.MustRegister(MessageFetchFailure)
	prometheus.MustRegister(MessagesSampled)
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler is mux middleware; it labels requests by route template
// so path variables and typos don't explode the label set.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		RequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).
			Observe(time.Since(start).Seconds())
	})
}
