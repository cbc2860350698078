package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// secretHeader is the header Telegram echoes the configured secret token in
const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

var (
	requestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_webhook_rejected_total",
		Help: "Webhook deliveries rejected at the boundary.",
	}, []string{"reason"})
	requestsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_webhook_accepted_total",
		Help: "Webhook deliveries accepted and enqueued.",
	})
)

// UpdateQueue is where accepted updates go. The HTTP response never waits
// for the update to be processed.
type UpdateQueue interface {
	Enqueue(update *tgbotapi.Update) error
}

// Server is the webhook ingestion server. It must be constructed with an
// already-wired queue; there is no way to accept traffic before wiring.
type Server struct {
	httpServer *http.Server
	queue      UpdateQueue
	secret     string
}

// NewServer creates the ingestion server listening on addr, accepting
// provider callbacks on path.
func NewServer(addr, path, secret string, queue UpdateQueue) *Server {
	s := &Server{
		queue:  queue,
		secret: secret,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post(path, s.handleWebhook)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("webhook server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and drains in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleWebhook authenticates, parses and enqueues one provider callback.
// Rejected deliveries never reach the queue.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(secretHeader)
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) != 1 {
		requestsRejected.WithLabelValues("bad_secret").Inc()
		http.Error(w, "Forbidden", http.StatusUnauthorized)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		requestsRejected.WithLabelValues("bad_payload").Inc()
		log.WithError(err).Debug("Rejected malformed webhook payload")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := s.queue.Enqueue(&update); err != nil {
		requestsRejected.WithLabelValues("queue_closed").Inc()
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	requestsAccepted.Inc()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
