package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/ports"
	"github.com/seu-repo/vocalis/internal/service/assistant"
	"github.com/seu-repo/vocalis/internal/service/voiceloop"
)

type AssistantHandler struct {
	service  ports.AssistantService
	uploader ports.MediaUploader // optional; nil disables file uploads
	log      *zap.Logger
}

func NewAssistantHandler(service ports.AssistantService, uploader ports.MediaUploader, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service:  service,
		uploader: uploader,
		log:      log,
	}
}

type AskRequest struct {
	Command string `json:"command"`
}

// errorEnvelope mirrors the interpretation schema so clients can speak the
// failure the same way they speak a success.
func errorEnvelope(c *fiber.Ctx, status int, response string) error {
	assistantName, _ := c.Locals("assistant_name").(string)
	username, _ := c.Locals("user_name").(string)

	return c.Status(status).JSON(fiber.Map{
		"assistant": assistantName,
		"user":      username,
		"intent":    domain.IntentError,
		"response":  response,
		"data":      nil,
	})
}

// Ask runs one voice command through the interpretation pipeline.
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid request body")
	}

	interp, err := h.service.Ask(c.Context(), userID, req.Command)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyCommand):
			return errorEnvelope(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, assistant.ErrUserNotFound):
			return errorEnvelope(c, fiber.StatusNotFound, err.Error())
		default:
			h.log.Error("interpretation failed", zap.String("user_id", userID), zap.Error(err))
			return errorEnvelope(c, fiber.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.JSON(interp)
}

// UpdateUserDetails changes the assistant persona. The avatar can arrive
// either as a multipart file (pushed to the media host) or as a preset
// image URL in the form/JSON body.
func (h *AssistantHandler) UpdateUserDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	assistantName := c.FormValue("assistantName")
	imageURL := c.FormValue("imageUrl")

	if file, err := c.FormFile("assistantImage"); err == nil && file != nil {
		if h.uploader == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File uploads are not enabled"})
		}
		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read uploaded file"})
		}
		defer src.Close()

		url, err := h.uploader.Upload(c.Context(), file.Filename, src)
		if err != nil {
			h.log.Error("avatar upload failed", zap.String("user_id", userID), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Avatar upload failed"})
		}
		imageURL = url
	}

	if assistantName == "" && imageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nothing to update"})
	}

	user, err := h.service.UpdateAssistant(c.Context(), userID, assistantName, imageURL)
	if err != nil {
		if errors.Is(err, assistant.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.log.Error("persona update failed", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Update failed"})
	}

	return c.JSON(fiber.Map{"user": sanitize(user)})
}

type ClassifyRequest struct {
	Transcript string `json:"transcript"`
}

// Classify exposes the local voice-loop gating rules so thin clients can
// delegate the wake-word and shortcut decisions.
func (h *AssistantHandler) Classify(c *fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	assistantName, _ := c.Locals("assistant_name").(string)
	decision := voiceloop.Classify(req.Transcript, assistantName)

	return c.JSON(fiber.Map{
		"action": decision.Action.String(),
		"say":    decision.Say,
	})
}
