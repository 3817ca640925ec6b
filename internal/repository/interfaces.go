package repository

import (
	"context"
	"image"
)

// ImageRepository defines the data access boundary for images undergoing
// quality validation.
type ImageRepository interface {
	// FetchImage retrieves a decoded image from a URL
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)

	// ValidateImageURL validates if the provided URL is acceptable
	ValidateImageURL(imageURL string) error
}
