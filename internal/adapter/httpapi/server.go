// Package httpapi exposes the dashboard core over HTTP: health, readiness,
// and metrics endpoints plus a JSON API mirroring the controller operations.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oceanguardio/oceanguard/internal/dashboard"
	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/store"
)

// Server exposes the dashboard controller over HTTP.
type Server struct {
	httpServer *http.Server
	ctrl       *dashboard.Controller
	logger     *slog.Logger
}

// NewServer creates an HTTP server wired to the controller.
func NewServer(addr string, ctrl *dashboard.Controller, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		ctrl:   ctrl,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/reports", s.handleListReports)
	mux.HandleFunc("POST /api/reports", s.handleSubmitReport)
	mux.HandleFunc("GET /api/reports/nearby", s.handleNearby)
	mux.HandleFunc("POST /api/reports/{id}/verify", s.handleVerify)
	mux.HandleFunc("GET /api/markers", s.handleMarkers)
	mux.HandleFunc("GET /api/social", s.handleSocial)
	mux.HandleFunc("GET /api/social/sentiment", s.handleSentiment)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/notifications", s.handleNotifications)
	mux.HandleFunc("DELETE /api/notifications/{id}", s.handleDismiss)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/session", s.handleSession)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.ctrl.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	filter := store.ParseReportFilter(r.URL.Query().Get("filter"))
	writeJSON(w, http.StatusOK, s.ctrl.ListReports(filter))
}

type reportRequest struct {
	Type        string      `json:"type"`
	Severity    string      `json:"severity"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Contact     string      `json:"contact"`
	Images      int         `json:"images"`
	Geo         *domain.Geo `json:"geo"`
}

func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := s.ctrl.SubmitReport(r.Context(), dashboard.ReportForm{
		Type:        req.Type,
		Severity:    req.Severity,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact,
		Images:      req.Images,
		Geo:         req.Geo,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Reason)
			return
		}
		s.logger.Error("report submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submission failed")
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radius <= 0 {
		radius = 50
	}
	reports := s.ctrl.NearbyReports(domain.Geo{Lat: lat, Lon: lon}, radius)
	if reports == nil {
		reports = []domain.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}
	if err := s.ctrl.Verify(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "verification failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Markers())
}

func (s *Server) handleSocial(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Social())
}

func (s *Server) handleSentiment(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.SentimentBreakdown())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Stats())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	writeJSON(w, http.StatusOK, s.ctrl.ChartSeries(days))
}

func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	notifications := s.ctrl.Notifications()
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.ctrl.DismissNotification(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := s.ctrl.Login(r.Context(), req.Email, req.Password)
	s.writeAuthResult(w, user, err)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := s.ctrl.Signup(r.Context(), req.Name, req.Email, req.Password)
	s.writeAuthResult(w, user, err)
}

func (s *Server) writeAuthResult(w http.ResponseWriter, user domain.User, err error) {
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Reason)
			return
		}
		var eerr *domain.ExternalFailure
		if errors.As(err, &eerr) {
			writeError(w, http.StatusUnauthorized, eerr.Reason)
			return
		}
		writeError(w, http.StatusInternalServerError, "authentication failed")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": s.ctrl.SessionStatus(),
		"user":   s.ctrl.SessionUser(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
