package http

import (
	"context"
	"net/http"

	"estateportal/src/helper/ids"
	"estateportal/src/services/clients"
)

const (
	ClientCookieName  = "estateportal_client"
	ClientTokenHeader = "X-Client-Token"
)

type clientContextKey struct{}

// withClient resolve o cliente pelo header ou pelo cookie. Sem token válido um novo é emitido
// no cookie e no header da resposta.
func (s *Server) withClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := clientToken(r)
		if token == "" {
			token = ids.New()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(ClientTokenHeader, token)
		}

		client, err := s.clients.Get(r.Context(), token)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientContextKey{}, client)))
	})
}

func clientToken(r *http.Request) string {
	if token := r.Header.Get(ClientTokenHeader); ids.Valid(token) {
		return token
	}
	if cookie, err := r.Cookie(ClientCookieName); err == nil && ids.Valid(cookie.Value) {
		return cookie.Value
	}
	return ""
}

func clientFrom(r *http.Request) *clients.Client {
	return r.Context().Value(clientContextKey{}).(*clients.Client)
}
