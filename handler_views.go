package taxicompare

import (
	"net/http"
	"strconv"
	"time"
)

// handleView serves /api/{view}
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	label := viewLabel(r)
	status := s.serveView(w, r)
	viewRequests.WithLabelValues(label, strconv.Itoa(status)).Inc()
	viewDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}

func (s *Server) serveView(w http.ResponseWriter, r *http.Request) int {
	name, err := requestView(r)
	if err != nil {
		return writeError(w, r, err)
	}
	format, err := requestFormat(r)
	if err != nil {
		return writeError(w, r, err)
	}
	renderer, err := s.svc.renderer()
	if err != nil {
		return writeError(w, r, err)
	}
	body, err := renderer.GetView(name, format)
	if err != nil {
		s.logger.Error("view query failed", "view", name, "request_id", requestID(r.Context()), "error", err)
		return writeError(w, r, err)
	}
	return writeBody(w, format, body)
}

// handleSummary serves /api/summary with every view in one object
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := s.serveSummary(w, r)
	viewRequests.WithLabelValues(summaryKey, strconv.Itoa(status)).Inc()
	viewDuration.WithLabelValues(summaryKey).Observe(time.Since(start).Seconds())
}

func (s *Server) serveSummary(w http.ResponseWriter, r *http.Request) int {
	format, err := requestFormat(r)
	if err != nil {
		return writeError(w, r, err)
	}
	renderer, err := s.svc.renderer()
	if err != nil {
		return writeError(w, r, err)
	}
	body, err := renderer.GetSummary(r.Context(), format)
	if err != nil {
		s.logger.Error("summary query failed", "request_id", requestID(r.Context()), "error", err)
		return writeError(w, r, err)
	}
	return writeBody(w, format, body)
}
