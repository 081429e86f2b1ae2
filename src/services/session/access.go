package session

import (
	"context"
	"net/url"

	"estateportal/src/domain/entities"
)

type Area string

const (
	AreaPublic    Area = "public"
	AreaDashboard Area = "dashboard"
	AreaAdmin     Area = "admin"
)

type Access struct {
	Allowed  bool
	User     *entities.User
	Redirect string
}

// LoginPath carrega o caminho de volta para depois do login.
func LoginPath(returnPath string) string {
	return "/login?redirect=" + url.QueryEscape(returnPath)
}

// Authorize decide se a sessão atual entra na área pedida. Anônimo vai para o login com
// o caminho de retorno; logado sem o papel certo vai para a própria área.
func (m *SessionManager) Authorize(ctx context.Context, area Area, requestedPath string) Access {
	if area == AreaPublic {
		return Access{Allowed: true}
	}

	user, changed, err := m.resolve(ctx)
	if err != nil {
		return Access{Redirect: LoginPath(requestedPath)}
	}
	if changed {
		m.notify(ctx, &user)
	}

	if area == AreaAdmin && !user.IsAdmin() {
		return Access{User: &user, Redirect: LandingPath(user)}
	}

	return Access{Allowed: true, User: &user}
}
