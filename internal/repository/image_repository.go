package repository

import (
	"context"
	"image"

	"go-image-quality/internal/storage"
)

// fetcherRepository implements ImageRepository over any storage fetcher.
type fetcherRepository struct {
	fetcher      storage.ImageFetcher
	urlValidator *URLValidator
}

// NewImageRepository creates a repository backed by the given fetcher.
func NewImageRepository(fetcher storage.ImageFetcher) ImageRepository {
	return &fetcherRepository{
		fetcher:      fetcher,
		urlValidator: NewURLValidator(),
	}
}

// FetchImage retrieves a decoded image from a URL
func (r *fetcherRepository) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	return r.fetcher.FetchImage(ctx, imageURL)
}

// ValidateImageURL validates if the provided URL is acceptable
func (r *fetcherRepository) ValidateImageURL(imageURL string) error {
	return r.urlValidator.Validate(imageURL)
}
