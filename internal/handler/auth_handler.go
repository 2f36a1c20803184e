package handler

import (
	"errors"
	"net/http"

	"property-service/internal/auth"
	"property-service/internal/workflow"
	"property-service/pkg/jwtutil"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Login resolves the presented credentials through the configured
// authenticator and issues a session token.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req auth.Credentials
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" {
		prometheus.RecordAuthError("missing_email")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	user, err := authenticator.Authenticate(records(), req)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownEmail) || errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn("Login rejected", zap.String("email", req.Email), zap.Error(err))
			prometheus.RecordAuthError("invalid_credentials")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		log.Error("Login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user.Sanitized(),
	})
}

// Register creates a new tenant account.
func Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req auth.Registration
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	user, err := auth.Register(records(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			prometheus.RecordAuthError("incomplete_registration")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, auth.ErrEmailTaken):
			log.Warn("Registration rejected, email taken", zap.String("email", req.Email))
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		default:
			log.Error("Failed to register user", zap.Error(err))
			prometheus.RecordAuthError("registration_failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
		}
	}

	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Account created successfully",
		"user":    user.Sanitized(),
	})
}

// UpdateProfile edits the current user's name and phone.
func UpdateProfile(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	var req workflow.ProfileInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updated, err := workflow.UpdateProfile(records(), user.ID, req)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Profile updated", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, updated.Sanitized())
}

// GetProfile returns the current user's record.
func GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c).Sanitized())
}
