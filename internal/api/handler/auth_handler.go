package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/catalog-api/internal/api/metrics"
	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a new account with the default "user" role.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	recordAudit(h.audit, user.ID, "user.register", user.ID)
	return c.JSON(http.StatusCreated, registerResponse{Message: "User registered successfully"})
}

// Login authenticates an account and returns a signed access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
