package http

import (
	"fmt"
	"net/http"
	"strings"

	"estateportal/src/domain"
)

func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, clientFrom(r).Favorites.List())
}

func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var request FavoriteRequest
	if err := decodeJSON(r, &request); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(request.PropertyID) == "" {
		s.writeError(w, r, fmt.Errorf("propertyId is required: %w", domain.ErrValidation))
		return
	}

	property, err := s.properties.GetProperty(r.Context(), request.PropertyID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := clientFrom(r).Favorites.Add(r.Context(), property); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, clientFrom(r).Favorites.List())
}

func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := clientFrom(r).Favorites.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := clientFrom(r).Favorites.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
