// Package handler contains the HTTP handlers for the application.
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

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// CreateProfile creates the caller's profile with a generated username.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// DeleteProfile removes the caller's profile.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile deleted successfully")
}

// SetPublished flips the caller's publication state.
func (h *ProfileHandler) SetPublished(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	// A body of JSON null binds without error but leaves input nil.
	var input *usecase.PublishInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}

	output, err := h.uc.SetPublished(c.Request().Context(), identity.ID, input.Publish)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Publication state updated")
}

// GetPublicProfile returns the published projection for a username.
func (h *ProfileHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// ShareQR renders the caller's public URL as a PNG QR code.
func (h *ProfileHandler) ShareQR(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.ShareQR(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
