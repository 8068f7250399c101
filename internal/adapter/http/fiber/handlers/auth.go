package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/ports"
	"github.com/seu-repo/vocalis/internal/service/auth"
)

// CookieSettings carries the session cookie parameters from config.
type CookieSettings struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	service ports.AuthService
	cookie  CookieSettings
	log     *zap.Logger
}

func NewAuthHandler(service ports.AuthService, cookie CookieSettings, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		log:     log,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.service.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			h.log.Error("registration failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed"})
		}
	}

	// Auto-login after registration.
	accessToken, refreshToken, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": sanitize(user)})
	}

	h.setSessionCookie(c, accessToken)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": sanitize(user),
		"tokens": fiber.Map{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	accessToken, refreshToken, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("login failed", zap.String("email", req.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	user, _ := h.service.ValidateToken(c.Context(), accessToken)

	h.setSessionCookie(c, accessToken)
	return c.JSON(fiber.Map{
		"user": sanitize(user),
		"tokens": fiber.Map{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

// Logout blacklists the presented token and clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token, ok := c.Locals("token").(string); ok && token != "" {
		if err := h.service.RevokeToken(c.Context(), token); err != nil {
			h.log.Warn("token revocation failed", zap.Error(err))
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	accessToken, err := h.service.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	h.setSessionCookie(c, accessToken)
	return c.JSON(fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": req.RefreshToken,
	})
}

// GetUserDetails returns the authenticated user's profile.
func (h *AuthHandler) GetUserDetails(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*domain.User)
	if !ok || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	return c.JSON(fiber.Map{"user": sanitize(user)})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Expires:  time.Now().Add(h.cookie.MaxAge),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// sanitize strips the password hash before a user leaves the API.
func sanitize(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.Password = ""
	return &clean
}
