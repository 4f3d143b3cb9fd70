package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-api/internal/application/auth"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
)

// AuthHandler maneja registro y login de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	session, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}
