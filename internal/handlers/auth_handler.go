package handlers

import (
	"github.com/gofiber/fiber/v2"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, token, err := h.auth.SignUp(c.Context(), request.Email, request.Password, request.DisplayName)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, role, err := h.auth.SignIn(c.Context(), request.Email, request.Password)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  role,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenID := c.Locals("token_id").(string)
	h.auth.SignOut(tokenID)
	return c.JSON(fiber.Map{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := h.auth.CurrentUser(c.Context(), userID)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(user)
}
