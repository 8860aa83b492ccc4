package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageHandler serves the HTML entry points. The dashboard and preview pages
// are single-page-app shells; the portfolio page is rendered server side so
// published profiles work without client scripting.
type PageHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		uc:     uc,
		logger: logger,
	}
}

const appShell = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Profiled</title>
  <link rel="stylesheet" href="/static/app.css">
</head>
<body>
  <div id="app"></div>
  <script src="/static/app.js"></script>
</body>
</html>`

var portfolioTemplate = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.FullName}}</title>
  <link rel="stylesheet" href="/static/portfolio-{{.Theme}}.css">
</head>
<body class="theme-{{.Theme}}">
  <main>
    <h1>{{.FullName}}</h1>
    {{if .Headline}}<p class="headline">{{.Headline}}</p>{{end}}
    {{if .Bio}}<section class="bio"><p>{{.Bio}}</p></section>{{end}}
    {{if .Skills}}<section class="skills"><ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
  </main>
</body>
</html>`))

// Landing serves the marketing page at the root domain.
func (h *PageHandler) Landing(c echo.Context) error {
	return c.HTML(http.StatusOK, appShell)
}

// Dashboard serves the profile editor shell.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, appShell)
}

// Preview serves the draft preview shell.
func (h *PageHandler) Preview(c echo.Context) error {
	return c.HTML(http.StatusOK, appShell)
}

// Portfolio renders the published portfolio for a username. Unknown and
// unpublished profiles both come back as the same not-found page.
func (h *PageHandler) Portfolio(c echo.Context) error {
	profile, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound {
			return c.HTML(http.StatusNotFound, notFoundPage)
		}

		return errors.WithStack(err)
	}

	var buf bytes.Buffer
	if err := portfolioTemplate.Execute(&buf, profile); err != nil {
		return errors.Wrap(err, "failed to render portfolio page")
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

const notFoundPage = `<!DOCTYPE html>
<html lang="zh-Hant">
<head><meta charset="utf-8"><title>404</title></head>
<body><main><h1>404</h1><p>找不到這個作品集。</p></main></body>
</html>`
