package fiber

import (
	"context"
	"net/http"

	"dashboard-export-service/internal/export/core/domain"

	"github.com/gofiber/fiber/v2"
)

// AttachmentDelivery writes an archive to the HTTP response as a download.
type AttachmentDelivery struct {
	c *fiber.Ctx
}

func NewAttachmentDelivery(c *fiber.Ctx) *AttachmentDelivery {
	return &AttachmentDelivery{c: c}
}

func (d *AttachmentDelivery) Deliver(_ context.Context, a *domain.Archive) error {
	d.c.Attachment(a.Filename)
	d.c.Set(fiber.HeaderContentType, "application/zip")
	return d.c.Status(http.StatusOK).Send(a.Content)
}
