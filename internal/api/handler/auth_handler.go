package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velkart/commerce-api/internal/api/metrics"
	"github.com/velkart/commerce-api/internal/core/domain"
	"github.com/velkart/commerce-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for the account flows.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		Address:     req.Address,
		RecoveryKey: req.Answer,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Success: true,
		Message: "user registered successfully",
		User:    user,
	})
}

// Login authenticates a user and returns a session token.
//
// A wrong password is reported as 200 with success=false rather than an HTTP
// error; only an unknown email is a 404. Existing clients depend on this
// split.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email or password")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			metrics.LoginAttemptsTotal.WithLabelValues("wrong_password").Inc()
			return c.JSON(http.StatusOK, statusResponse{Message: "invalid password"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "login successful",
		User: profileView{
			Name:    result.User.Name,
			Email:   result.User.Email,
			Phone:   result.User.Phone,
			Address: result.User.Address,
			Role:    result.User.Role,
		},
		Token: result.Token,
	})
}

// ForgotPassword resets the password for the account matching the email and
// recovery answer.
//
// @Summary      Reset password via recovery answer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Recovery credentials"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Failure      429   {object}  statusResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.ForgotPassword(c.Request().Context(), ports.ForgotPasswordInput{
		Email:       req.Email,
		RecoveryKey: req.Answer,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWrongRecovery):
			metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
		case errors.Is(err, domain.ErrTooManyResetAttempts):
			metrics.PasswordResetsTotal.WithLabelValues("throttled").Inc()
		default:
			metrics.PasswordResetsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, statusResponse{
		Success: true,
		Message: "password reset successfully",
	})
}

// UpdateProfile merges the supplied fields over the caller's stored record.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields (all optional)"
// @Success      200   {object}  updateProfileResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Success:     true,
		Message:     "profile updated successfully",
		UpdatedUser: updated,
	})
}
