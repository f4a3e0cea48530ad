package usecase

import (
	"context"
	"fmt"
	"strings"

	reviewdomain "watchlog-backend/internal/review/domain"
	reviewdto "watchlog-backend/internal/review/dto"
	"watchlog-backend/internal/review/repository"
	"watchlog-backend/pkg/apperror"
)

const latestReviewsLimit = 5

// reviewUsecase implements ReviewUsecase interface
type reviewUsecase struct {
	reviewRepo repository.ReviewRepository
	posters    PosterResolver
}

// NewReviewUsecase creates a new instance of reviewUsecase
func NewReviewUsecase(reviewRepo repository.ReviewRepository, posters PosterResolver) ReviewUsecase {
	return &reviewUsecase{
		reviewRepo: reviewRepo,
		posters:    posters,
	}
}

func (u *reviewUsecase) Create(ctx context.Context, userID string, req *reviewdto.CreateReviewRequest) (*reviewdomain.Review, error) {
	name := strings.TrimSpace(req.Name)
	text := strings.TrimSpace(req.Review)

	if name == "" {
		return nil, apperror.Validation("Name can't be empty")
	}
	if text == "" {
		return nil, apperror.Validation("Review can't be empty")
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	existing, err := u.reviewRepo.FindByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict(fmt.Sprintf("Review for '%s' already exists", name))
	}

	review := &reviewdomain.Review{
		UserID:     userID,
		Name:       name,
		Review:     text,
		Rating:     req.Rating,
		URL:        trimmedURL(req.URL),
		WatchAgain: req.WatchAgain,
	}
	if review.WatchAgain == nil {
		watchAgain := false
		review.WatchAgain = &watchAgain
	}

	// Best-effort enrichment: a failed poster resolution must not fail
	// the review.
	if u.posters != nil {
		if image, err := u.posters.Resolve(ctx, name); err == nil && image != nil {
			review.ImageID = &image.ID
			review.Image = image
		}
	}

	if err := u.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	return review, nil
}

func (u *reviewUsecase) GetAll(userID string) ([]*reviewdomain.Review, error) {
	return u.reviewRepo.FindAllByUser(userID)
}

func (u *reviewUsecase) GetLatest(userID string) ([]*reviewdomain.Review, error) {
	return u.reviewRepo.FindLatestByUser(userID, latestReviewsLimit)
}

func (u *reviewUsecase) GetByID(userID, reviewID string) (*reviewdomain.Review, error) {
	return u.loadOwned(userID, reviewID)
}

func (u *reviewUsecase) Update(userID, reviewID string, req *reviewdto.UpdateReviewRequest) (*reviewdomain.Review, error) {
	review, err := u.loadOwned(userID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Name.Set {
		name := strings.TrimSpace(req.Name.Value)
		if !req.Name.Valid || name == "" {
			return nil, apperror.Validation("Name can't be empty")
		}
		if name != review.Name {
			existing, err := u.reviewRepo.FindByUserAndName(userID, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperror.Conflict(fmt.Sprintf("Review for '%s' already exists", name))
			}
		}
		review.Name = name
	}

	if req.Review.Set {
		text := strings.TrimSpace(req.Review.Value)
		if !req.Review.Valid || text == "" {
			return nil, apperror.Validation("Review can't be empty")
		}
		review.Review = text
	}

	// Optional fields: omitted keeps the stored value, explicit null
	// clears it, a value replaces it.
	if req.Rating.Set {
		if req.Rating.Valid {
			rating := req.Rating.Value
			if err := validateRating(&rating); err != nil {
				return nil, err
			}
			review.Rating = &rating
		} else {
			review.Rating = nil
		}
	}

	if req.URL.Set {
		if req.URL.Valid {
			review.URL = trimmedURL(&req.URL.Value)
		} else {
			review.URL = nil
		}
	}

	if req.WatchAgain.Set {
		if req.WatchAgain.Valid {
			watchAgain := req.WatchAgain.Value
			review.WatchAgain = &watchAgain
		} else {
			review.WatchAgain = nil
		}
	}

	if err := u.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	return u.reviewRepo.FindByID(reviewID)
}

func (u *reviewUsecase) Delete(userID, reviewID string) error {
	// Idempotent: deleting an absent or already-deleted review succeeds
	return u.reviewRepo.Delete(userID, reviewID)
}

func (u *reviewUsecase) DeleteAllForUser(userID string) error {
	return u.reviewRepo.DeleteAllByUser(userID)
}

func (u *reviewUsecase) GroupedByRatings(userID string, rating *int, count int) ([]*reviewdomain.RatingGroup, error) {
	if count <= 0 {
		count = DefaultGroupCount
	}

	var buckets []*int
	if rating != nil {
		if *rating < 0 || *rating > 5 {
			return nil, apperror.Validation("Rating must be between 0 and 5")
		}
		if *rating == 0 {
			buckets = []*int{nil}
		} else {
			buckets = []*int{rating}
		}
	} else {
		five, four, three, two, one := 5, 4, 3, 2, 1
		buckets = []*int{&five, &four, &three, &two, &one, nil}
	}

	groups := make([]*reviewdomain.RatingGroup, 0, len(buckets))
	for _, bucket := range buckets {
		reviews, err := u.reviewRepo.FindByUserAndRating(userID, bucket, count)
		if err != nil {
			return nil, err
		}
		groups = append(groups, &reviewdomain.RatingGroup{
			Rating:  bucket,
			Reviews: reviews,
		})
	}

	return groups, nil
}

// loadOwned loads a review by id and enforces ownership: absent reviews
// are NotFound, another user's reviews are Forbidden and never leak
// content.
func (u *reviewUsecase) loadOwned(userID, reviewID string) (*reviewdomain.Review, error) {
	review, err := u.reviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NotFound("Review not found")
	}
	if review.UserID != userID {
		return nil, apperror.Forbidden("Forbidden")
	}
	return review, nil
}

func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return apperror.Validation("Rating must be between 1 and 5")
	}
	return nil
}

func trimmedURL(url *string) *string {
	if url == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*url)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
