package handlers

import (
	"github.com/gofiber/fiber/v2"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/services"
)

type FileHandler struct {
	files *services.FileService
}

func NewFileHandler(files *services.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// List returns the caller's files, each with a resolved download URL and
// download mode, or an inline per-record error.
func (h *FileHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.files.ListForOwner(c.Context(), userID, c.Get("User-Agent"))
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"files": entries})
}

// Download re-resolves a single record for its owner.
func (h *FileHandler) Download(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fileID := c.Params("id")

	entry, err := h.files.Resolve(c.Context(), fileID, userID, c.Get("User-Agent"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	if entry.Error != "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": entry.Error})
	}

	return c.JSON(entry)
}
