package service

import (
	"context"
	"testing"

	"makerskills-api/core/errors"
	"makerskills-api/modules/reviews/dto"
	"makerskills-api/modules/reviews/entity"

	"github.com/google/uuid"
)

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*entity.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) (*entity.Review, error) {
	review.ID = uuid.New()
	f.reviews[review.ID] = review
	return review, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) GetAll(_ context.Context) ([]entity.Review, error) {
	var out []entity.Review
	for _, r := range f.reviews {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.reviews[id]; !ok {
		return false, nil
	}
	delete(f.reviews, id)
	return true, nil
}

func TestCreateReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	created, appErr := svc.Create(context.Background(), &dto.CreateReviewRequest{
		FullName: "Sami B.",
		Stars:    5,
		Message:  "great bootcamp",
	})
	if appErr != nil {
		t.Fatalf("Create: %v", appErr)
	}
	if created.ID == uuid.Nil {
		t.Error("review has no id")
	}
	if created.Image != nil {
		t.Error("image should be nil when not uploaded")
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	tests := []struct {
		name string
		req  dto.CreateReviewRequest
	}{
		{"missing full name", dto.CreateReviewRequest{Stars: 3, Message: "ok"}},
		{"missing message", dto.CreateReviewRequest{FullName: "Sami B.", Stars: 3}},
		{"stars too low", dto.CreateReviewRequest{FullName: "Sami B.", Stars: 0, Message: "ok"}},
		{"stars too high", dto.CreateReviewRequest{FullName: "Sami B.", Stars: 6, Message: "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), &tt.req)
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
			}
		})
	}
}

func TestUpdateReviewStarsValidated(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)
	review := &entity.Review{ID: uuid.New(), FullName: "Sami B.", Stars: 4, Message: "ok"}
	repo.reviews[review.ID] = review

	bad := 9
	_, appErr := svc.Update(context.Background(), review.ID, &dto.UpdateReviewRequest{Stars: &bad})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}

	good := 2
	updated, appErr := svc.Update(context.Background(), review.ID, &dto.UpdateReviewRequest{Stars: &good})
	if appErr != nil {
		t.Fatalf("Update: %v", appErr)
	}
	if updated.Stars != 2 {
		t.Errorf("stars = %d, want 2", updated.Stars)
	}
}

func TestFindOneUnknownReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	_, appErr := svc.FindOne(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrNotFound)
	}
}

// Remove returns the deleted review so the caller can release its image
// from storage.
func TestRemoveReturnsDeletedReview(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)
	image := "/uploads/reviews/abc.jpg"
	review := &entity.Review{ID: uuid.New(), FullName: "Sami B.", Stars: 4, Message: "ok", Image: &image}
	repo.reviews[review.ID] = review

	deleted, appErr := svc.Remove(context.Background(), review.ID)
	if appErr != nil {
		t.Fatalf("Remove: %v", appErr)
	}
	if deleted.Image == nil || *deleted.Image != image {
		t.Error("deleted review does not carry its image path")
	}
	if _, ok := repo.reviews[review.ID]; ok {
		t.Error("review still stored")
	}
}
