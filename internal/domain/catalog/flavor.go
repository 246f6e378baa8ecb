package catalog

import (
	"strings"
	"time"

	"github.com/jellybean/emporium/internal/domain/shared"
)

// SentinelImageKey is stored for flavors that have no uploaded picture.
// Rows carrying this key must never trigger an object-store delete.
const SentinelImageKey = "no-image-available.jpeg"

// MaxImageFileSize is the maximum allowed upload size (10MB)
const MaxImageFileSize = 10 * 1024 * 1024

// Flavor represents a single jellybean flavor in the catalog
type Flavor struct {
	ID        uint64
	Name      string
	ImageKey  string
	DateAdded time.Time
}

// NewFlavor creates a new flavor. An empty image key falls back to the
// sentinel so every row always references a displayable picture.
func NewFlavor(name, imageKey string) (*Flavor, error) {
	if imageKey == "" {
		imageKey = SentinelImageKey
	}
	if err := validateImageKey(imageKey); err != nil {
		return nil, err
	}

	return &Flavor{
		Name:      name,
		ImageKey:  imageKey,
		DateAdded: time.Now().UTC(),
	}, nil
}

// Rename changes the flavor's display name
func (f *Flavor) Rename(name string) {
	f.Name = name
}

// ReplaceImage points the flavor at a newly uploaded picture
func (f *Flavor) ReplaceImage(imageKey string) error {
	if err := validateImageKey(imageKey); err != nil {
		return err
	}
	f.ImageKey = imageKey
	return nil
}

// HasImage returns true if the flavor references an uploaded picture
// rather than the sentinel placeholder
func (f *Flavor) HasImage() bool {
	return f.ImageKey != SentinelImageKey
}

// validation functions

func validateImageKey(key string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_IMAGE_KEY", "Image key cannot be empty")
	}
	if len(key) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_KEY", "Image key cannot exceed 500 characters")
	}
	// Prevent path traversal attacks
	if strings.Contains(key, "..") {
		return shared.NewDomainError("INVALID_IMAGE_KEY", "Image key cannot contain path traversal sequences")
	}
	// Prevent absolute paths (must be relative within bucket)
	if strings.HasPrefix(key, "/") {
		return shared.NewDomainError("INVALID_IMAGE_KEY", "Image key must be a relative path")
	}
	for _, r := range key {
		if r < 32 || r == 127 {
			return shared.NewDomainError("INVALID_IMAGE_KEY", "Image key contains invalid characters")
		}
	}
	return nil
}
