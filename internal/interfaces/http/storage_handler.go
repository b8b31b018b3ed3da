package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/storage"
)

// StorageHandler maneja las peticiones HTTP de archivos (protegido, salvo
// la descarga pública que sirve las URLs emitidas).
type StorageHandler struct {
	uc *storage.StorageUseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *storage.StorageUseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// Upload POST /api/v1/storage/:folder — multipart con el campo "file".
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "campo multipart \"file\" requerido")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "no se pudo abrir el archivo")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "no se pudo leer el archivo")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uc.UploadFile(c.UserContext(), c.Params("folder"), fileHeader.Filename, contentType, data)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "archivo subido", fiber.Map{"url": url})
}

// GetURL GET /api/v1/storage/url/*
func (h *StorageHandler) GetURL(c *fiber.Ctx) error {
	url, err := h.uc.GetFileURL(c.UserContext(), c.Params("*"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "url encontrada", fiber.Map{"url": url})
}

// Delete DELETE /api/v1/storage/*
func (h *StorageHandler) Delete(c *fiber.Ctx) error {
	existed, err := h.uc.DeleteFile(c.UserContext(), c.Params("*"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "archivo eliminado", fiber.Map{"deleted": existed})
}

// Download GET /api/v1/storage/files/* — sirve el binario, no la envoltura.
func (h *StorageHandler) Download(c *fiber.Ctx) error {
	data, contentType, err := h.uc.DownloadFile(c.UserContext(), c.Params("*"))
	if err != nil {
		return failWith(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}
