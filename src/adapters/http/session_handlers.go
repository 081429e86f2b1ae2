package http

import (
	"errors"
	"net/http"

	"estateportal/src/domain"
	"estateportal/src/services/session"
)

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var request LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		s.writeError(w, r, err)
		return
	}

	current := clientFrom(r).Session
	user, err := current.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.metrics.LoginFailures.Inc()
		}
		s.writeError(w, r, err)
		return
	}

	redirect := r.URL.Query().Get("redirect")
	if redirect == "" {
		redirect = session.LandingPath(user)
	}
	s.writeJSON(w, http.StatusOK, SessionResponse{User: user, State: current.State(), Redirect: redirect})
}

// Register não faz login; o cliente vai para a tela de login.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var request RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := clientFrom(r).Session.Register(r.Context(), request.Name, request.Email, request.Password); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, StatusResponse{Status: "registered"})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := clientFrom(r).Session.Logout(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	current := clientFrom(r).Session
	user, err := current.CurrentUser(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, SessionResponse{User: user, State: current.State(), Redirect: session.LandingPath(user)})
}
