package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profiled/internal/delivery/http/middleware"
	"profiled/internal/delivery/http/response"
	"profiled/internal/domain/entity"
	mockUsecase "profiled/internal/mocks/usecase"
	"profiled/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixtures struct {
	t       *testing.T
	handler *ProfileHandler
	uc      *mockUsecase.MockProfileUsecase
}

func newProfileHandlerFixtures(t *testing.T) *profileHandlerFixtures {
	uc := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &profileHandlerFixtures{
		t:       t,
		handler: NewProfileHandler(uc, logger),
		uc:      uc,
	}
}

// newJSONContext builds an authenticated echo context carrying a JSON body,
// the way requests arrive after the auth middleware has run.
func newJSONContext(method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, identity)

	return c, rec
}

func TestProfileHandler_SetPublished(t *testing.T) {
	f := newProfileHandlerFixtures(t)
	identity := &entity.Identity{ID: uuid.New(), Name: "Alice Chen", Email: "alice@example.com"}

	f.uc.EXPECT().
		SetPublished(mock.Anything, identity.ID, true).
		Return(&usecase.PublishOutput{Published: true, URL: "https://alice.profiled.site/"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/profile/publish", `{"publish":true}`, identity)

	require.NoError(t, f.handler.SetPublished(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestProfileHandler_SetPublishedNullBody(t *testing.T) {
	f := newProfileHandlerFixtures(t)
	identity := &entity.Identity{ID: uuid.New(), Name: "Alice Chen", Email: "alice@example.com"}

	// JSON null binds into a nil input without a binder error.
	c, rec := newJSONContext(http.MethodPost, "/api/profile/publish", `null`, identity)

	require.NotPanics(t, func() {
		require.NoError(t, f.handler.SetPublished(c))
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
}

func TestProfileHandler_SetPublishedMalformedBody(t *testing.T) {
	f := newProfileHandlerFixtures(t)
	identity := &entity.Identity{ID: uuid.New(), Name: "Alice Chen", Email: "alice@example.com"}

	c, rec := newJSONContext(http.MethodPost, "/api/profile/publish", `{"publish":`, identity)

	require.NoError(t, f.handler.SetPublished(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
