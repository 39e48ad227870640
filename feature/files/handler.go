package files

import (
	"bytes"
	"errors"

	"bunny-manager/core/logger"
	"bunny-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Get("/:zone/:name/exists", h.HandleExists)
	group.Post("/:zone/:name/purge", h.HandlePurge)
	group.Get("/:zone/:name", h.HandleDownload)
	group.Put("/:zone/:name", h.HandleUpload)
	group.Delete("/:zone/:name", h.HandleDelete)
}

// HandleDownload proxies an object download. Backend failures were already
// logged by the service and surface as a plain 404.
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	data, found := h.service.Fetch(c.Context(), c.Params("zone"), c.Params("name"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// HandleExists answers whether an object exists.
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	exists, err := h.service.Exists(c.Context(), c.Params("zone"), c.Params("name"))
	if err != nil {
		l.Error("existence check failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// HandleUpload stores the request body as an object.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	err := h.service.Store(c.Context(), c.Params("zone"), c.Params("name"), bytes.NewReader(c.Body()))
	if err != nil {
		var remote *storage.RemoteError
		if errors.As(err, &remote) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":           "upload rejected",
				"upstream_status": remote.StatusCode,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "stored"})
}

// HandleDelete removes an object.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	err := h.service.Remove(c.Context(), c.Params("zone"), c.Params("name"))
	if err != nil {
		var remote *storage.RemoteError
		if errors.As(err, &remote) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":           "delete rejected",
				"upstream_status": remote.StatusCode,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandlePurge evicts the CDN-cached copy of an object. Failures were logged
// by the service; the response degrades to status "unknown".
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	status := h.service.Purge(c.Context(), c.Params("zone"), c.Params("name"))
	if status == "" {
		return c.JSON(fiber.Map{"status": "unknown"})
	}
	return c.JSON(fiber.Map{"status": status})
}
