package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/models"
	"appdrop-backend/internal/services"
)

type AdminHandler struct {
	files *services.FileService
	users *services.UserService
}

func NewAdminHandler(files *services.FileService, users *services.UserService) *AdminHandler {
	return &AdminHandler{files: files, users: users}
}

// Upload stores a file or an external link on behalf of the chosen user.
// The multipart form carries user_id plus either a "file" part or a
// "link" field.
func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	input := services.UploadInput{
		UserID: c.FormValue("user_id"),
		Link:   c.FormValue("link"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open file"})
		}
		defer file.Close()

		input.Kind = models.KindFile
		input.Name = fileHeader.Filename
		input.Data = file
		input.Size = fileHeader.Size
		input.ContentType = fileHeader.Header.Get("Content-Type")
		input.OnProgress = progressLogger(fileHeader.Filename)
	} else {
		input.Kind = models.KindLink
	}

	record, err := h.files.Upload(c.Context(), input)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "File uploaded successfully",
		"file":    record,
	})
}

// progressLogger logs upload progress at quarter marks.
func progressLogger(name string) func(int) {
	next := 25
	return func(pct int) {
		for pct >= next {
			log.Printf("Uploading %s: %d%%", name, next)
			next += 25
		}
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var request struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.users.Update(c.Context(), c.Params("id"), services.UpdateInput{
		Email:       request.Email,
		DisplayName: request.DisplayName,
	})
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}
