package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	imagedomain "watchlog-backend/internal/image/domain"
	"watchlog-backend/internal/image/repository"
	"watchlog-backend/pkg/omdb"
)

// PosterFetcher fetches a base64 poster for a title from a third-party
// API. Treated as unreliable; callers must tolerate failure.
type PosterFetcher interface {
	FetchPoster(ctx context.Context, title string) (string, error)
}

// ImageUsecase defines the interface for poster cache logic
type ImageUsecase interface {
	// Resolve returns the cached poster for a title, fetching and caching
	// it on a miss. Best-effort: any failure yields (nil, nil).
	Resolve(ctx context.Context, name string) (*imagedomain.Image, error)

	// FindByName is a cache-only lookup, nil on miss.
	FindByName(name string) (*imagedomain.Image, error)
}

// imageUsecase implements ImageUsecase interface
type imageUsecase struct {
	imageRepo repository.ImageRepository
	fetcher   PosterFetcher
}

// NewImageUsecase creates a new instance of imageUsecase
func NewImageUsecase(imageRepo repository.ImageRepository, fetcher PosterFetcher) ImageUsecase {
	return &imageUsecase{
		imageRepo: imageRepo,
		fetcher:   fetcher,
	}
}

func (u *imageUsecase) Resolve(ctx context.Context, name string) (*imagedomain.Image, error) {
	key := cacheKey(name)
	if key == "" {
		return nil, nil
	}

	image, err := u.imageRepo.FindByName(key)
	if err != nil {
		log.Printf("[WARN] Poster cache lookup failed for %q: %v", key, err)
		return nil, nil
	}
	if image != nil {
		return image, nil
	}

	if u.fetcher == nil {
		return nil, nil
	}

	img, err := u.fetcher.FetchPoster(ctx, name)
	if err != nil {
		if !errors.Is(err, omdb.ErrNoPoster) {
			log.Printf("[WARN] Poster fetch failed for %q: %v", name, err)
		}
		return nil, nil
	}

	image = &imagedomain.Image{
		Name: key,
		Img:  img,
	}
	if err := u.imageRepo.Create(image); err != nil {
		log.Printf("[WARN] Failed to cache poster for %q: %v", key, err)
		return nil, nil
	}

	return image, nil
}

func (u *imageUsecase) FindByName(name string) (*imagedomain.Image, error) {
	return u.imageRepo.FindByName(cacheKey(name))
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
