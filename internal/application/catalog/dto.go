package catalog

import (
	"io"
	"time"

	"github.com/jellybean/emporium/internal/domain/catalog"
)

// ImageUpload carries an uploaded picture from the transport layer to the service.
// The reader is consumed exactly once during storage upload.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateFlavorRequest is the input for adding a new flavor
type CreateFlavorRequest struct {
	Name  string
	Image *ImageUpload
}

// UpdateFlavorRequest is the input for changing an existing flavor
type UpdateFlavorRequest struct {
	Name  string
	Image *ImageUpload
}

// FlavorResponse is the wire representation of a flavor
type FlavorResponse struct {
	ID        uint64    `json:"id"`
	Flavor    string    `json:"flavor"`
	ImageKey  string    `json:"image_key"`
	DateAdded time.Time `json:"date_added"`
}

// ToFlavorResponse converts a domain flavor to its wire representation
func ToFlavorResponse(f *catalog.Flavor) FlavorResponse {
	return FlavorResponse{
		ID:        f.ID,
		Flavor:    f.Name,
		ImageKey:  f.ImageKey,
		DateAdded: f.DateAdded,
	}
}

// ToFlavorResponses converts a slice of domain flavors.
// Always returns a non-nil slice so an empty catalog encodes as [].
func ToFlavorResponses(flavors []catalog.Flavor) []FlavorResponse {
	responses := make([]FlavorResponse, 0, len(flavors))
	for i := range flavors {
		responses = append(responses, ToFlavorResponse(&flavors[i]))
	}
	return responses
}
