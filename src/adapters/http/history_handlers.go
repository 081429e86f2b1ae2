package http

import "net/http"

func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, clientFrom(r).History.Search(r.URL.Query().Get("q")))
}

// RecordView é chamado pela página de detalhe. Anônimo recebe 204 e nada é gravado.
func (s *Server) RecordView(w http.ResponseWriter, r *http.Request) {
	property, err := s.properties.GetProperty(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := clientFrom(r).History.RecordView(r.Context(), property); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) RemoveFromHistory(w http.ResponseWriter, r *http.Request) {
	if err := clientFrom(r).History.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := clientFrom(r).History.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
