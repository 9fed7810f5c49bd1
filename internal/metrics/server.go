package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Endpoint is the path metrics are served on
const Endpoint = "/metrics"

// Server exposes a Recorder over HTTP
type Server struct {
	server *http.Server
}

// NewServer creates a metrics server listening on addr
func NewServer(addr string, recorder *Recorder) (*Server, error) {
	if addr == "" {
		return nil, errors.New("metrics address cannot be empty")
	}

	mux := http.NewServeMux()
	mux.Handle(Endpoint, recorder.Handler())

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start serves metrics in the background
func (s *Server) Start() {
	go func() {
		logrus.Infof("metrics server listening on %s%s", s.server.Addr, Endpoint)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("metrics server failed")
		}
	}()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
