package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profiled/internal/delivery/http/middleware"
	"profiled/internal/delivery/http/router/handler"
	"profiled/internal/domain/entity"
	mockService "profiled/internal/mocks/service"
	mockUsecase "profiled/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	e         *echo.Echo
	profileUC *mockUsecase.MockProfileUsecase
}

func newRouterFixtures(t *testing.T) *routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	usernameUC := mockUsecase.NewMockUsernameUsecase(t)
	sessionSvc := mockService.NewMockSessionService(t)

	r := NewRouter(RouterParams{
		ProfileHandler:  handler.NewProfileHandler(profileUC, logger),
		UsernameHandler: handler.NewUsernameHandler(usernameUC, logger),
		PageHandler:     handler.NewPageHandler(profileUC, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(sessionSvc),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return &routerFixtures{e: e, profileUC: profileUC}
}

func (f *routerFixtures) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

// Every path the host classifier passes through to the app shell must have a
// registered route, including client-side subpaths like /dashboard/settings.
func TestRouter_ShellRoutesCoverSubpaths(t *testing.T) {
	f := newRouterFixtures(t)

	paths := []string{
		"/",
		"/dashboard",
		"/dashboard/settings",
		"/dashboard/projects/new",
		"/preview",
		"/preview/theme",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := f.get(path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `<div id="app">`)
		})
	}
}

func TestRouter_PortfolioSubpathsRenderPage(t *testing.T) {
	f := newRouterFixtures(t)

	f.profileUC.EXPECT().
		GetPublicProfile(mock.Anything, "alice").
		Return(&entity.PublicProfile{Username: "alice", FullName: "Alice Chen", Theme: "minimal"}, nil).
		Twice()

	for _, path := range []string{"/portfolio/alice", "/portfolio/alice/projects"} {
		rec := f.get(path)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Alice Chen")
	}
}
