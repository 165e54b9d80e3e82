package service

import (
	"context"
	"testing"

	"makerskills-api/core/errors"
	"makerskills-api/modules/herosection/dto"
	"makerskills-api/modules/herosection/entity"

	"github.com/google/uuid"
)

type fakeHeroRepo struct {
	sections map[uuid.UUID]*entity.HeroSection
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{sections: map[uuid.UUID]*entity.HeroSection{}}
}

func (f *fakeHeroRepo) Create(_ context.Context, s *entity.HeroSection) (*entity.HeroSection, error) {
	s.ID = uuid.New()
	f.sections[s.ID] = s
	return s, nil
}

func (f *fakeHeroRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.HeroSection, error) {
	return f.sections[id], nil
}

func (f *fakeHeroRepo) GetAll(_ context.Context) ([]entity.HeroSection, error) {
	var out []entity.HeroSection
	for _, s := range f.sections {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeHeroRepo) Update(_ context.Context, s *entity.HeroSection) error {
	f.sections[s.ID] = s
	return nil
}

func (f *fakeHeroRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.sections[id]; !ok {
		return false, nil
	}
	delete(f.sections, id)
	return true, nil
}

func TestCreateHeroSectionParsesButtons(t *testing.T) {
	svc := NewHeroSectionService(newFakeHeroRepo())

	created, appErr := svc.Create(context.Background(), &dto.CreateHeroSectionRequest{
		Title:       "Learn by making",
		Description: "Hands-on training",
		Buttons:     `[{"name":"Register","action":"/events"},{"name":"Shop","action":"/products"}]`,
	})
	if appErr != nil {
		t.Fatalf("Create: %v", appErr)
	}
	if len(created.Buttons) != 2 {
		t.Fatalf("buttons = %d, want 2", len(created.Buttons))
	}
	if created.Buttons[0].Name != "Register" || created.Buttons[0].Action != "/events" {
		t.Errorf("first button = %+v", created.Buttons[0])
	}
}

func TestCreateHeroSectionRejectsBadButtons(t *testing.T) {
	svc := NewHeroSectionService(newFakeHeroRepo())

	tests := []struct {
		name    string
		buttons string
	}{
		{"not json", "{{"},
		{"missing action", `[{"name":"Register"}]`},
		{"missing name", `[{"action":"/events"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), &dto.CreateHeroSectionRequest{
				Title:       "Learn by making",
				Description: "Hands-on training",
				Buttons:     tt.buttons,
			})
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
			}
		})
	}
}

func TestCreateHeroSectionRequiresTitleAndDescription(t *testing.T) {
	svc := NewHeroSectionService(newFakeHeroRepo())

	_, appErr := svc.Create(context.Background(), &dto.CreateHeroSectionRequest{Title: "only title"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

// New uploads replace the previous image set; the old paths come back so
// the controller can release them.
func TestUpdateHeroSectionReturnsReplacedImages(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroSectionService(repo)
	section := &entity.HeroSection{
		ID:          uuid.New(),
		Title:       "Learn by making",
		Description: "Hands-on training",
		Images:      []string{"/uploads/hero-section/old.jpg"},
	}
	repo.sections[section.ID] = section

	updated, replaced, appErr := svc.Update(context.Background(), section.ID, &dto.UpdateHeroSectionRequest{
		Images: []string{"/uploads/hero-section/new.jpg"},
	})
	if appErr != nil {
		t.Fatalf("Update: %v", appErr)
	}
	if len(replaced) != 1 || replaced[0] != "/uploads/hero-section/old.jpg" {
		t.Errorf("replaced = %v", replaced)
	}
	if len(updated.Images) != 1 || updated.Images[0] != "/uploads/hero-section/new.jpg" {
		t.Errorf("images = %v", updated.Images)
	}
}
