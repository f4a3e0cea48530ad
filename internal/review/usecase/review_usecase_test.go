package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	imagedomain "watchlog-backend/internal/image/domain"
	reviewdomain "watchlog-backend/internal/review/domain"
	reviewdto "watchlog-backend/internal/review/dto"
	"watchlog-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReviewRepo is an in-memory ReviewRepository
type fakeReviewRepo struct {
	reviews map[string]*reviewdomain.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*reviewdomain.Review)}
}

func (f *fakeReviewRepo) Create(review *reviewdomain.Review) error {
	f.nextID++
	review.ID = fmt.Sprintf("review-%d", f.nextID)
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) FindByID(id string) (*reviewdomain.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) FindByUserAndName(userID, name string) (*reviewdomain.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.Name == name {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindAllByUser(userID string) ([]*reviewdomain.Review, error) {
	var out []*reviewdomain.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindLatestByUser(userID string, limit int) ([]*reviewdomain.Review, error) {
	all, _ := f.FindAllByUser(userID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeReviewRepo) FindByUserAndRating(userID string, rating *int, limit int) ([]*reviewdomain.Review, error) {
	var out []*reviewdomain.Review
	for _, r := range f.reviews {
		if r.UserID != userID {
			continue
		}
		switch {
		case rating == nil && r.Rating == nil:
		case rating != nil && r.Rating != nil && *rating == *r.Rating:
		default:
			continue
		}
		if len(out) == limit {
			break
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(review *reviewdomain.Review) error {
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) Delete(userID, id string) error {
	if r, ok := f.reviews[id]; ok && r.UserID == userID {
		delete(f.reviews, id)
	}
	return nil
}

func (f *fakeReviewRepo) DeleteAllByUser(userID string) error {
	for id, r := range f.reviews {
		if r.UserID == userID {
			delete(f.reviews, id)
		}
	}
	return nil
}

// stubPosterResolver returns a fixed image or error
type stubPosterResolver struct {
	image  *imagedomain.Image
	err    error
	called int
}

func (s *stubPosterResolver) Resolve(_ context.Context, _ string) (*imagedomain.Image, error) {
	s.called++
	return s.image, s.err
}

func createReq(name string) *reviewdto.CreateReviewRequest {
	return &reviewdto.CreateReviewRequest{
		Name:   name,
		Review: "worth watching",
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)

	_, err := uc.Create(context.Background(), "u1", &reviewdto.CreateReviewRequest{Name: " ", Review: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = uc.Create(context.Background(), "u1", &reviewdto.CreateReviewRequest{Name: "Dune", Review: "  "})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	six := 6
	_, err = uc.Create(context.Background(), "u1", &reviewdto.CreateReviewRequest{Name: "Dune", Review: "x", Rating: &six})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreate_DuplicatePerUser(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)

	_, err := uc.Create(context.Background(), "u1", createReq("Dune"))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "u1", createReq("Dune"))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	// A different user can review the same title
	_, err = uc.Create(context.Background(), "u2", createReq("Dune"))
	require.NoError(t, err)
}

func TestCreate_DefaultsAndPoster(t *testing.T) {
	poster := &stubPosterResolver{image: &imagedomain.Image{ID: "img-1", Name: "dune", Img: "deadbeef"}}
	uc := NewReviewUsecase(newFakeReviewRepo(), poster)

	review, err := uc.Create(context.Background(), "u1", createReq("Dune"))
	require.NoError(t, err)

	require.NotNil(t, review.WatchAgain)
	assert.False(t, *review.WatchAgain)
	require.NotNil(t, review.ImageID)
	assert.Equal(t, "img-1", *review.ImageID)
	assert.Equal(t, 1, poster.called)
}

func TestCreate_PosterFailureIsNonFatal(t *testing.T) {
	poster := &stubPosterResolver{err: errors.New("omdb down")}
	uc := NewReviewUsecase(newFakeReviewRepo(), poster)

	review, err := uc.Create(context.Background(), "u1", createReq("Dune"))
	require.NoError(t, err)
	assert.Nil(t, review.ImageID)
}

func TestGetByID_Ownership(t *testing.T) {
	repo := newFakeReviewRepo()
	uc := NewReviewUsecase(repo, nil)

	created, err := uc.Create(context.Background(), "owner", createReq("Dune"))
	require.NoError(t, err)

	_, err = uc.GetByID("owner", created.ID)
	require.NoError(t, err)

	_, err = uc.GetByID("intruder", created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	_, err = uc.GetByID("owner", "missing-id")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestUpdate_PartialSemantics(t *testing.T) {
	repo := newFakeReviewRepo()
	uc := NewReviewUsecase(repo, nil)

	four := 4
	url := "https://example.com/dune"
	req := createReq("Dune")
	req.Rating = &four
	req.URL = &url
	created, err := uc.Create(context.Background(), "u1", req)
	require.NoError(t, err)

	// Omitted fields stay; explicit null clears; value replaces
	var update reviewdto.UpdateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"review":"rewatched, still great","rating":null}`), &update))

	updated, err := uc.Update("u1", created.ID, &update)
	require.NoError(t, err)
	assert.Equal(t, "rewatched, still great", updated.Review)
	assert.Nil(t, updated.Rating, "explicit null must clear the rating")
	require.NotNil(t, updated.URL, "omitted url must stay")
	assert.Equal(t, url, *updated.URL)

	// Replace the rating again
	update = reviewdto.UpdateReviewRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"rating":5}`), &update))
	updated, err = uc.Update("u1", created.ID, &update)
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
}

func TestUpdate_Validation(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)
	created, err := uc.Create(context.Background(), "u1", createReq("Dune"))
	require.NoError(t, err)

	var update reviewdto.UpdateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"review":""}`), &update))
	_, err = uc.Update("u1", created.ID, &update)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	update = reviewdto.UpdateReviewRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"rating":9}`), &update))
	_, err = uc.Update("u1", created.ID, &update)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdate_ForbiddenForOtherUser(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)
	created, err := uc.Create(context.Background(), "owner", createReq("Dune"))
	require.NoError(t, err)

	var update reviewdto.UpdateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"review":"hijacked"}`), &update))
	_, err = uc.Update("intruder", created.ID, &update)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestDelete_Idempotent(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)
	created, err := uc.Create(context.Background(), "u1", createReq("Dune"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("u1", created.ID))
	// Second delete of the same review still succeeds
	require.NoError(t, uc.Delete("u1", created.ID))
	// So does deleting something that never existed
	require.NoError(t, uc.Delete("u1", "missing-id"))
}

func TestGroupedByRatings_AllBuckets(t *testing.T) {
	repo := newFakeReviewRepo()
	uc := NewReviewUsecase(repo, nil)

	five := 5
	for i := 0; i < 12; i++ {
		req := createReq(fmt.Sprintf("Movie %d", i))
		req.Rating = &five
		_, err := uc.Create(context.Background(), "u1", req)
		require.NoError(t, err)
	}
	_, err := uc.Create(context.Background(), "u1", createReq("Unrated"))
	require.NoError(t, err)

	groups, err := uc.GroupedByRatings("u1", nil, 10)
	require.NoError(t, err)
	require.Len(t, groups, 6)

	// Buckets come back as 5,4,3,2,1,null
	for i, want := range []int{5, 4, 3, 2, 1} {
		require.NotNil(t, groups[i].Rating)
		assert.Equal(t, want, *groups[i].Rating)
	}
	assert.Nil(t, groups[5].Rating)

	assert.Len(t, groups[0].Reviews, 10, "bucket must be capped at count")
	assert.Len(t, groups[5].Reviews, 1)
}

func TestGroupedByRatings_SingleBucket(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)
	_, err := uc.Create(context.Background(), "u1", createReq("Unrated"))
	require.NoError(t, err)

	// 0 selects the "no rating" bucket
	zero := 0
	groups, err := uc.GroupedByRatings("u1", &zero, 10)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Nil(t, groups[0].Rating)
	assert.Len(t, groups[0].Reviews, 1)

	three := 3
	groups, err = uc.GroupedByRatings("u1", &three, 10)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Rating)
	assert.Equal(t, 3, *groups[0].Rating)
}

func TestGroupedByRatings_OutOfRange(t *testing.T) {
	uc := NewReviewUsecase(newFakeReviewRepo(), nil)

	six := 6
	_, err := uc.GroupedByRatings("u1", &six, 10)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
