package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sports-explorer/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server exposes a Recorder on /metrics.
type Server struct {
	srv      *http.Server
	listener net.Listener
	log      logger.Logger
}

// Listen binds addr and starts serving in the background.
func Listen(addr string, rec *Recorder, log logger.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(rec.Registry(), promhttp.HandlerOpts{}))

	s := &Server{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		log:      log,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics", err, map[string]interface{}{"addr": addr})
		}
	}()

	log.Info("Metrics", "listening", map[string]interface{}{"addr": ln.Addr().String()})
	return s, nil
}

// Addr is the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Warning("Metrics", "shutdown incomplete", map[string]interface{}{"error": err.Error()})
	}
}
