package http

import (
	"net/http"

	"estateportal/src/domain"
)

func (s *Server) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter, hasCriteria, err := parsePropertyFilter(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if hasCriteria {
		result, err := s.properties.FilterProperties(r.Context(), filter)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, result)
		return
	}

	result, err := s.properties.ListProperties(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) HighlightedProperties(w http.ResponseWriter, r *http.Request) {
	result, err := s.properties.HighlightedProperties(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := s.properties.GetProperty(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, PropertyDetailResponse{
		Property: property,
		Favorite: clientFrom(r).Favorites.Contains(property.ID),
	})
}

func (s *Server) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var input domain.PropertyInput
	if err := decodeJSON(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}

	property, err := s.properties.CreateProperty(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.PropertyChanges.WithLabelValues("create").Inc()
	s.writeJSON(w, http.StatusCreated, property)
}

func (s *Server) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var patch domain.PropertyPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	property, err := s.properties.UpdateProperty(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.PropertyChanges.WithLabelValues("update").Inc()
	s.writeJSON(w, http.StatusOK, property)
}

func (s *Server) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := s.properties.DeleteProperty(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.PropertyChanges.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}
