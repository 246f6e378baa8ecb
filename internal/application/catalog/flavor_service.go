package catalog

import (
	"context"
	"io"
	"strings"

	"github.com/jellybean/emporium/internal/domain/catalog"
	"github.com/jellybean/emporium/internal/domain/shared"
	"github.com/jellybean/emporium/internal/infrastructure/telemetry"
)

// AllowedImageContentTypes defines the whitelist of content types accepted
// for flavor pictures. SVG is excluded because it can carry scripts.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// ObjectStorageService defines the interface for object storage operations.
// This interface is implemented by the infrastructure layer (S3, MinIO, etc.)
type ObjectStorageService interface {
	// Upload stores an object under the given key
	Upload(ctx context.Context, storageKey string, content io.Reader, size int64, contentType string) error

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// FlavorService handles catalog operations over flavors and their pictures
type FlavorService struct {
	flavorRepo catalog.FlavorRepository
	storage    ObjectStorageService
}

// NewFlavorService creates a new FlavorService
func NewFlavorService(flavorRepo catalog.FlavorRepository, storage ObjectStorageService) *FlavorService {
	return &FlavorService{
		flavorRepo: flavorRepo,
		storage:    storage,
	}
}

// List returns every flavor in the catalog
func (s *FlavorService) List(ctx context.Context) ([]FlavorResponse, error) {
	flavors, err := s.flavorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToFlavorResponses(flavors), nil
}

// GetByID returns a single flavor
func (s *FlavorService) GetByID(ctx context.Context, id uint64) (*FlavorResponse, error) {
	flavor, err := s.flavorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToFlavorResponse(flavor)
	return &response, nil
}

// Create stores the uploaded picture (if any) and inserts a new flavor row.
// The picture goes to object storage first so a storage failure never leaves
// a row pointing at a missing object.
func (s *FlavorService) Create(ctx context.Context, req CreateFlavorRequest) (*FlavorResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "flavor", "create")
	defer span.End()
	telemetry.SetAttribute(span, telemetry.SpanAttrFlavorName, req.Name)

	imageKey := ""
	if req.Image != nil {
		key, err := s.storeImage(ctx, req.Image)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		imageKey = key
	}

	flavor, err := catalog.NewFlavor(req.Name, imageKey)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.flavorRepo.Create(ctx, flavor); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrFlavorID, flavor.ID)

	response := ToFlavorResponse(flavor)
	return &response, nil
}

// Update renames a flavor and optionally replaces its picture. The previous
// picture is left in storage untouched; only a delete removes objects.
func (s *FlavorService) Update(ctx context.Context, id uint64, req UpdateFlavorRequest) (*FlavorResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "flavor", "update")
	defer span.End()
	telemetry.SetAttribute(span, telemetry.SpanAttrFlavorID, id)

	flavor, err := s.flavorRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if req.Image != nil {
		key, err := s.storeImage(ctx, req.Image)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		if err := flavor.ReplaceImage(key); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	flavor.Rename(req.Name)

	if err := s.flavorRepo.Update(ctx, flavor); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToFlavorResponse(flavor)
	return &response, nil
}

// Delete removes a flavor and its stored picture. The storage object is
// deleted first; if that fails the row is kept so the catalog never
// references pictures it silently lost. The sentinel placeholder is shared
// between rows and is never deleted.
func (s *FlavorService) Delete(ctx context.Context, id uint64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "flavor", "delete")
	defer span.End()
	telemetry.SetAttribute(span, telemetry.SpanAttrFlavorID, id)

	flavor, err := s.flavorRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if flavor.HasImage() {
		if err := s.storage.DeleteObject(ctx, flavor.ImageKey); err != nil {
			derr := shared.NewDomainError("STORAGE_DELETE_FAILED", "Failed to delete image from storage")
			telemetry.RecordError(span, derr)
			return derr
		}
		telemetry.AddEvent(span, "image_deleted", telemetry.SpanAttrImageKey, flavor.ImageKey)
	}

	return s.flavorRepo.Delete(ctx, id)
}

// storeImage validates and uploads a picture, returning its storage key.
// The key is the uploaded file's own name, so re-uploading the same file
// name overwrites the previous object.
func (s *FlavorService) storeImage(ctx context.Context, img *ImageUpload) (string, error) {
	if img.FileName == "" {
		return "", shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if strings.Contains(img.FileName, "/") || strings.Contains(img.FileName, "\\") {
		return "", shared.NewDomainError("INVALID_FILE_NAME", "File name cannot contain path separators")
	}
	if img.Size > catalog.MaxImageFileSize {
		return "", shared.NewDomainError("FILE_TOO_LARGE", "Image exceeds the maximum upload size")
	}
	if img.ContentType != "" && !isAllowedImageContentType(img.ContentType) {
		return "", shared.NewDomainError("DISALLOWED_CONTENT_TYPE", "Only image uploads are allowed")
	}

	if err := s.storage.Upload(ctx, img.FileName, img.Content, img.Size, img.ContentType); err != nil {
		return "", shared.NewDomainError("STORAGE_UPLOAD_FAILED", "Failed to upload image to storage")
	}

	return img.FileName, nil
}

// isAllowedImageContentType checks a content type against the whitelist
func isAllowedImageContentType(contentType string) bool {
	return AllowedImageContentTypes[strings.ToLower(contentType)]
}
