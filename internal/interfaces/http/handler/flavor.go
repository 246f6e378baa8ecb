package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/jellybean/emporium/internal/application/catalog"
	"github.com/jellybean/emporium/internal/domain/shared"
	"github.com/jellybean/emporium/internal/infrastructure/logger"
	"github.com/jellybean/emporium/internal/interfaces/http/dto"
)

// FlavorHandler handles the jellybean flavor API endpoints
type FlavorHandler struct {
	BaseHandler
	flavorService *catalogapp.FlavorService
}

// NewFlavorHandler creates a new FlavorHandler
func NewFlavorHandler(flavorService *catalogapp.FlavorService) *FlavorHandler {
	return &FlavorHandler{
		flavorService: flavorService,
	}
}

// CreateFlavorResponse is the body returned after inserting a flavor
type CreateFlavorResponse struct {
	Message   string                    `json:"message"`
	NewFlavor catalogapp.FlavorResponse `json:"newFlavor"`
}

// UpdateFlavorResponse is the body returned after updating a flavor
type UpdateFlavorResponse struct {
	Message       string                    `json:"message"`
	UpdatedFlavor catalogapp.FlavorResponse `json:"updatedFlavor"`
}

// List returns every flavor as a bare JSON array
func (h *FlavorHandler) List(c *gin.Context) {
	flavors, err := h.flavorService.List(c.Request.Context())
	if err != nil {
		logger.L(c.Request.Context()).Error("Failed to list flavors", zap.Error(err))
		h.InternalError(c, "Failed to fetch flavors")
		return
	}

	h.Success(c, flavors)
}

// Create inserts a new flavor from a multipart form with an optional picture
func (h *FlavorHandler) Create(c *gin.Context) {
	req := catalogapp.CreateFlavorRequest{
		Name: c.PostForm("flavor"),
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if image != nil {
		defer image.close()
		req.Image = &image.upload
	}

	flavor, err := h.flavorService.Create(c.Request.Context(), req)
	if err != nil {
		logger.L(c.Request.Context()).Error("Failed to create flavor",
			zap.String("flavor", req.Name),
			zap.Error(err),
		)
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, CreateFlavorResponse{
		Message:   "Flavor added",
		NewFlavor: *flavor,
	})
}

// Update renames a flavor and optionally replaces its picture
func (h *FlavorHandler) Update(c *gin.Context) {
	id, ok := h.flavorID(c)
	if !ok {
		return
	}

	req := catalogapp.UpdateFlavorRequest{
		Name: c.PostForm("flavor"),
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if image != nil {
		defer image.close()
		req.Image = &image.upload
	}

	flavor, err := h.flavorService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Flavor not found")
			return
		}
		logger.L(c.Request.Context()).Error("Failed to update flavor",
			zap.Uint64("flavor_id", id),
			zap.Error(err),
		)
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, UpdateFlavorResponse{
		Message:       "Flavor updated",
		UpdatedFlavor: *flavor,
	})
}

// Delete removes a flavor and its stored picture
func (h *FlavorHandler) Delete(c *gin.Context) {
	id, ok := h.flavorID(c)
	if !ok {
		return
	}

	if err := h.flavorService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Flavor not found")
			return
		}
		logger.L(c.Request.Context()).Error("Failed to delete flavor",
			zap.Uint64("flavor_id", id),
			zap.Error(err),
		)
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.MessageResponse{Message: "Flavor and associated image deleted"})
}

// flavorID parses the :id path parameter, answering 400 on garbage input
func (h *FlavorHandler) flavorID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid flavor ID")
		return 0, false
	}
	return id, true
}

// formImage pairs an ImageUpload with the open multipart file backing it
type formImage struct {
	upload catalogapp.ImageUpload
	close  func()
}

// imageFromForm extracts the optional imageFile part. A missing part is not an
// error; the service falls back to the placeholder key.
func (h *FlavorHandler) imageFromForm(c *gin.Context) (*formImage, error) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		// no file part in the form
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, shared.NewDomainError("STORAGE_UPLOAD_FAILED", "Failed to read uploaded image")
	}

	return &formImage{
		upload: catalogapp.ImageUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     file,
		},
		close: func() { _ = file.Close() },
	}, nil
}
