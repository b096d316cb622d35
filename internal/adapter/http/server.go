package http

import (
	"net/http"

	"github.com/bnema/vodpipe/internal/adapter/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux        *http.ServeMux
	handler    http.Handler
	handlers   *Handlers
	sseHandler *SSEHandler
	authSvc    AuthService
}

func NewServer(handlers *Handlers, sseHandler *SSEHandler, authSvc AuthService) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   handlers,
		sseHandler: sseHandler,
		authSvc:    authSvc,
	}

	s.registerRoutes()
	s.handler = middleware.SecurityHeaders(middleware.RequestLog(middleware.Metrics(s.mux)))

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /videos", AuthMiddleware(s.authSvc, s.handlers.Upload()))

	s.mux.HandleFunc("GET /videos/{id}", s.handlers.Asset())
	s.mux.HandleFunc("GET /videos/{id}/manifest", s.handlers.Manifest())
	s.mux.HandleFunc("GET /videos/{id}/hls/{file}", s.handlers.Segment())
	s.mux.HandleFunc("GET /videos/{id}/thumbnail", s.handlers.Thumbnail())
	s.mux.HandleFunc("GET /videos/{id}/events", s.sseHandler.Events())

	s.mux.HandleFunc("GET /healthz", s.handlers.Health())
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
