package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"profiled/config"
	"profiled/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Action is the outcome kind of a host classification.
type Action int

const (
	// ActionPass lets the request through unchanged.
	ActionPass Action = iota
	// ActionRewrite rewrites the request path before routing.
	ActionRewrite
	// ActionRedirect sends the client to another location.
	ActionRedirect
)

// Decision is the routing decision for one request. It is a pure value; the
// middleware applies it.
type Decision struct {
	Action   Action
	Path     string // rewrite target when Action is ActionRewrite
	Location string // redirect target when Action is ActionRedirect
}

// localDevSuffix matches development hosts like alice.localhost:3000.
const localDevSuffix = ".localhost"

// HostRouter classifies every page request by its Host header: subdomain
// hosts are rewritten to the public portfolio route, root-domain hosts are
// gated by session state. It runs as an echo Pre middleware, before routing.
type HostRouter struct {
	rootDomain string
	sessionSvc service.SessionService
	logger     *slog.Logger
}

// NewHostRouter is the constructor for HostRouter.
func NewHostRouter(cfg *config.Config, sessionSvc service.SessionService, logger *slog.Logger) *HostRouter {
	return &HostRouter{
		rootDomain: strings.ToLower(cfg.Site.RootDomain),
		sessionSvc: sessionSvc,
		logger:     logger,
	}
}

// Handle applies the classification to page requests. Static assets, API
// routes, and health checks are exempt: the classifier never sees them.
func (m *HostRouter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		path := req.URL.Path

		if isExemptPath(path) {
			return next(c)
		}

		decision := m.Classify(req.Host, path, m.hasSession(c))
		switch decision.Action {
		case ActionRedirect:
			return c.Redirect(http.StatusTemporaryRedirect, decision.Location)
		case ActionRewrite:
			req.URL.Path = decision.Path
			req.RequestURI = decision.Path
			if req.URL.RawQuery != "" {
				req.RequestURI += "?" + req.URL.RawQuery
			}
		}

		return next(c)
	}
}

// Classify decides how a page request is routed. It is a pure function of
// (host, path, session presence) and the configured root domain; every
// input produces a defined decision.
func (m *HostRouter) Classify(host, path string, hasSession bool) Decision {
	sub := m.extractSubdomain(host)

	// Subdomain-profile route. Public pages are reachable regardless of
	// session state, so this rule is terminal.
	if sub != "" {
		target := "/portfolio/" + sub
		if path != "/" && path != "" {
			target += path
		}

		return Decision{Action: ActionRewrite, Path: target}
	}

	// Root-domain traffic: session-based access control.
	if hasSession {
		if path == "/dashboard" || strings.HasPrefix(path, "/dashboard/") ||
			path == "/preview" || strings.HasPrefix(path, "/preview/") {
			return Decision{Action: ActionPass}
		}

		// Authenticated users are confined to the app, "/" included.
		return Decision{Action: ActionRedirect, Location: "/dashboard"}
	}

	if path == "/" || path == "/preview" || strings.HasPrefix(path, "/preview/") {
		return Decision{Action: ActionPass}
	}

	return Decision{Action: ActionRedirect, Location: "/"}
}

// extractSubdomain returns the profile label encoded in the host, or ""
// when the request targets the root domain. Empty and "www" labels, and any
// host that is neither under the root domain nor a local-development host,
// fall back to root-domain treatment rather than an invalid rewrite.
func (m *HostRouter) extractSubdomain(host string) string {
	hostname := strings.ToLower(host)
	if h, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = h
	}

	if hostname == m.rootDomain || hostname == "www."+m.rootDomain {
		return ""
	}

	var sub string
	switch {
	case strings.HasSuffix(hostname, "."+m.rootDomain):
		sub = strings.TrimSuffix(hostname, "."+m.rootDomain)
	case strings.HasSuffix(hostname, localDevSuffix):
		sub = strings.TrimSuffix(hostname, localDevSuffix)
	default:
		return ""
	}

	// The label before the first dot is the profile handle.
	if idx := strings.IndexByte(sub, '.'); idx >= 0 {
		sub = sub[:idx]
	}
	if sub == "" || sub == "www" {
		return ""
	}

	return sub
}

// hasSession reports whether the request carries a verifiable session
// token. Invalid and expired tokens count as no session.
func (m *HostRouter) hasSession(c echo.Context) bool {
	token := sessionToken(c)
	if token == "" {
		return false
	}

	if _, err := m.sessionSvc.VerifySession(token); err != nil {
		m.logger.Debug("session token rejected during host classification", slog.Any("error", err))

		return false
	}

	return true
}

// isExemptPath matches out the request kinds the classifier must never see.
func isExemptPath(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/static/") ||
		path == "/health"
}
