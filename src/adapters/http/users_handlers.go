package http

import (
	"net/http"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	var (
		result []entities.User
		err    error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		result, err = s.users.SearchUsers(r.Context(), q)
	} else {
		result, err = s.users.ListUsers(r.Context())
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input domain.UserInput
	if err := decodeJSON(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.CreateUser(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.UpdateUser(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
