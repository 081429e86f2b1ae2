package http

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"estateportal/src/infra/metrics"
	"estateportal/src/services/clients"
	"estateportal/src/services/dashboard"
	"estateportal/src/services/leads"
	"estateportal/src/services/messages"
	"estateportal/src/services/properties"
	"estateportal/src/services/session"
	"estateportal/src/services/users"
)

// Services agrupa tudo que os handlers usam.
type Services struct {
	Properties *properties.PropertyService
	Users      *users.UserService
	Messages   *messages.MessageService
	Clients    *clients.ClientRegistry
	Dashboard  *dashboard.DashboardService
	Leads      *leads.LeadService
}

// Server representa o servidor HTTP da API
type Server struct {
	logger  *slog.Logger
	server  *http.Server
	mux     *http.ServeMux
	addr    string
	metrics *metrics.MetricsManager

	properties *properties.PropertyService
	users      *users.UserService
	messages   *messages.MessageService
	clients    *clients.ClientRegistry
	dashboard  *dashboard.DashboardService
	leads      *leads.LeadService

	secureCookies bool
}

// NewServer cria uma nova instância do servidor
func NewServer(
	logger *slog.Logger,
	addr string,
	services Services,
	metricsManager *metrics.MetricsManager,
) *Server {
	server := &Server{
		logger:     logger,
		mux:        http.NewServeMux(),
		addr:       addr,
		metrics:    metricsManager,
		properties: services.Properties,
		users:      services.Users,
		messages:   services.Messages,
		clients:    services.Clients,
		dashboard:  services.Dashboard,
		leads:      services.Leads,
	}

	server.server = &http.Server{
		Addr:         addr,
		Handler:      server.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Imóveis
	server.handle("GET /v1/properties", session.AreaPublic, server.ListProperties)
	server.handle("GET /v1/properties/highlighted", session.AreaPublic, server.HighlightedProperties)
	server.handle("GET /v1/properties/{id}", session.AreaPublic, server.GetProperty)
	server.handle("POST /v1/properties", session.AreaAdmin, server.CreateProperty)
	server.handle("PATCH /v1/properties/{id}", session.AreaAdmin, server.UpdateProperty)
	server.handle("DELETE /v1/properties/{id}", session.AreaAdmin, server.DeleteProperty)

	// Sessão
	server.handle("POST /v1/session/login", session.AreaPublic, server.Login)
	server.handle("POST /v1/session/register", session.AreaPublic, server.Register)
	server.handle("POST /v1/session/logout", session.AreaPublic, server.Logout)
	server.handle("GET /v1/session", session.AreaPublic, server.CurrentUser)

	// Favoritos e histórico
	server.handle("GET /v1/favorites", session.AreaPublic, server.ListFavorites)
	server.handle("POST /v1/favorites", session.AreaPublic, server.AddFavorite)
	server.handle("DELETE /v1/favorites", session.AreaPublic, server.ClearFavorites)
	server.handle("DELETE /v1/favorites/{id}", session.AreaPublic, server.RemoveFavorite)
	server.handle("GET /v1/history", session.AreaDashboard, server.ListHistory)
	server.handle("DELETE /v1/history", session.AreaDashboard, server.ClearHistory)
	server.handle("POST /v1/history/{id}", session.AreaPublic, server.RecordView)
	server.handle("DELETE /v1/history/{id}", session.AreaDashboard, server.RemoveFromHistory)

	// Usuários
	server.handle("GET /v1/users", session.AreaAdmin, server.ListUsers)
	server.handle("POST /v1/users", session.AreaAdmin, server.CreateUser)
	server.handle("GET /v1/users/{id}", session.AreaAdmin, server.GetUser)
	server.handle("PATCH /v1/users/{id}", session.AreaAdmin, server.UpdateUser)
	server.handle("DELETE /v1/users/{id}", session.AreaAdmin, server.DeleteUser)

	// Mensagens
	server.handle("POST /v1/messages", session.AreaPublic, server.SendMessage)
	server.handle("GET /v1/messages", session.AreaAdmin, server.ListMessages)
	server.handle("GET /v1/messages/{id}", session.AreaAdmin, server.GetMessage)
	server.handle("POST /v1/messages/{id}/read", session.AreaAdmin, server.MarkMessageRead)
	server.handle("DELETE /v1/messages/{id}", session.AreaAdmin, server.DeleteMessage)

	server.handle("POST /v1/leads", session.AreaPublic, server.SubmitLead)
	server.handle("GET /v1/admin/stats", session.AreaAdmin, server.Stats)

	server.mux.Handle("GET /metrics", metricsManager.Handler())
	metricsManager.TrackActiveClients(services.Clients.Len)

	return server
}

// WithTimeouts troca os timeouts padrão do http.Server.
func (s *Server) WithTimeouts(read time.Duration, write time.Duration, idle time.Duration) *Server {
	s.server.ReadTimeout = read
	s.server.WriteTimeout = write
	s.server.IdleTimeout = idle
	return s
}

// WithSecureCookies marca o cookie do cliente como Secure; ligue atrás de HTTPS.
func (s *Server) WithSecureCookies(secure bool) *Server {
	s.secureCookies = secure
	return s
}

// handle registra a rota com o cliente da requisição, o gate de área e a instrumentação do prometheus.
func (s *Server) handle(pattern string, area session.Area, handler http.HandlerFunc) {
	var h http.Handler = handler
	if area != session.AreaPublic {
		h = s.requireArea(area, h)
	}
	h = s.withClient(h)

	labels := prometheus.Labels{"route": pattern}
	h = promhttp.InstrumentHandlerDuration(s.metrics.RequestLatency.MustCurryWith(labels), h)
	h = promhttp.InstrumentHandlerCounter(s.metrics.RequestsTotal.MustCurryWith(labels), h)

	s.mux.Handle(pattern, h)
}

// requireArea devolve 303 para o redirect calculado pela sessão quando o acesso é negado.
func (s *Server) requireArea(area session.Area, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		access := clientFrom(r).Session.Authorize(r.Context(), area, r.URL.RequestURI())
		if !access.Allowed {
			http.Redirect(w, r, access.Redirect, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler expõe o mux; usado pelos testes com httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start inicia o servidor HTTP
func (s *Server) Start() error {
	s.logger.Info("Server started", "addr", s.addr)

	return s.server.ListenAndServe()
}

// Shutdown encerra o servidor HTTP de forma graciosa
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
