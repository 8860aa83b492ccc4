package handler

import (
	"log/slog"
	"net/http"

	"profiled/internal/delivery/http/middleware"
	"profiled/internal/delivery/http/response"
	"profiled/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UsernameHandler holds dependencies for the username availability check.
type UsernameHandler struct {
	uc     usecase.UsernameUsecase
	logger *slog.Logger
}

// NewUsernameHandler is the constructor for UsernameHandler, injected by Fx.
func NewUsernameHandler(uc usecase.UsernameUsecase, logger *slog.Logger) *UsernameHandler {
	return &UsernameHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckUsername reports whether a candidate handle is free to claim. The
// caller's current handle never counts against them when renaming.
func (h *UsernameHandler) CheckUsername(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CheckUsernameInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid username input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid username input")
	}

	// The exclusion is always the caller, never client-supplied.
	input.ExcludeOwnerID = &identity.ID

	output, err := h.uc.CheckUsername(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Username checked")
}
