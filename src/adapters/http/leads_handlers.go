package http

import (
	"net/http"

	"estateportal/src/domain/entities"
)

func (s *Server) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var lead entities.Lead
	if err := decodeJSON(r, &lead); err != nil {
		s.writeError(w, r, err)
		return
	}

	message, err := s.leads.Submit(r.Context(), lead)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.LeadsSubmitted.Inc()
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}
