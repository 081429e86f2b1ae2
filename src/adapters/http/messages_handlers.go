package http

import (
	"net/http"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

// SendMessage é o formulário de contato público.
func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input domain.MessageInput
	if err := decodeJSON(r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}

	message, err := s.messages.SendMessage(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.MessagesSent.Inc()
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	var (
		result []entities.Message
		err    error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		result, err = s.messages.SearchMessages(r.Context(), q)
	} else {
		result, err = s.messages.ListMessages(r.Context())
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) GetMessage(w http.ResponseWriter, r *http.Request) {
	message, err := s.messages.GetMessage(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, message)
}

func (s *Server) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	message, err := s.messages.MarkMessageRead(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, message)
}

func (s *Server) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := s.messages.DeleteMessage(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
