package service

import (
	"context"
	"testing"
	"time"

	"makerskills-api/core/config"
	"makerskills-api/core/errors"
	eventsdto "makerskills-api/modules/events/dto"
	evententity "makerskills-api/modules/events/entity"
	"makerskills-api/modules/participants/dto"
	"makerskills-api/modules/participants/entity"
	"makerskills-api/modules/participants/repository"
	workshopsdto "makerskills-api/modules/workshops/dto"
	workshopentity "makerskills-api/modules/workshops/entity"

	"github.com/google/uuid"
)

type fakeParticipantRepo struct {
	participants map[uuid.UUID]*entity.Participant
	eventRoster  map[string]bool // eventID|email
	countByEvent map[uuid.UUID]int
	registerErr  error
	deleted      []uuid.UUID
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{
		participants: map[uuid.UUID]*entity.Participant{},
		eventRoster:  map[string]bool{},
		countByEvent: map[uuid.UUID]int{},
	}
}

func rosterKey(parentID uuid.UUID, email string) string {
	return parentID.String() + "|" + email
}

func (f *fakeParticipantRepo) RegisterForEvent(_ context.Context, p *entity.Participant, eventID uuid.UUID) (*entity.Participant, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.eventRoster[rosterKey(eventID, p.Email)] {
		return nil, repository.ErrDuplicateRegistration
	}
	p.ID = uuid.New()
	f.participants[p.ID] = p
	f.eventRoster[rosterKey(eventID, p.Email)] = true
	f.countByEvent[eventID]++
	return p, nil
}

func (f *fakeParticipantRepo) RegisterForWorkshop(_ context.Context, p *entity.Participant, workshopID uuid.UUID) (*entity.Participant, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	p.ID = uuid.New()
	f.participants[p.ID] = p
	return p, nil
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *entity.Participant) (*entity.Participant, error) {
	p.ID = uuid.New()
	f.participants[p.ID] = p
	return p, nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Participant, error) {
	return f.participants[id], nil
}

func (f *fakeParticipantRepo) GetByEventID(_ context.Context, eventID uuid.UUID) ([]entity.Participant, error) {
	var out []entity.Participant
	for _, p := range f.participants {
		if p.EventID != nil && *p.EventID == eventID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) GroupedByEvent(_ context.Context) ([]dto.EventGroup, error) {
	return nil, nil
}

func (f *fakeParticipantRepo) GetEventsByEmail(_ context.Context, email string) ([]dto.RegisteredEvent, error) {
	return nil, nil
}

func (f *fakeParticipantRepo) ExistsForEvent(_ context.Context, eventID uuid.UUID, email string) (bool, error) {
	return f.eventRoster[rosterKey(eventID, email)], nil
}

func (f *fakeParticipantRepo) ExistsForWorkshop(_ context.Context, workshopID uuid.UUID, email string) (bool, error) {
	return false, nil
}

func (f *fakeParticipantRepo) CountByEvent(_ context.Context, eventID uuid.UUID) (int, error) {
	return f.countByEvent[eventID], nil
}

func (f *fakeParticipantRepo) CountByWorkshop(_ context.Context, workshopID uuid.UUID) (int, error) {
	return 0, nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, p *entity.Participant) error {
	f.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, p *entity.Participant) error {
	delete(f.participants, p.ID)
	f.deleted = append(f.deleted, p.ID)
	return nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]*evententity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*evententity.Event{}}
}

func (f *fakeEventRepo) Create(_ context.Context, e *evententity.Event, _ []uuid.UUID) (*evententity.Event, error) {
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*evententity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) GetAll(_ context.Context) ([]evententity.Event, error) { return nil, nil }

func (f *fakeEventRepo) Update(_ context.Context, e *evententity.Event, _ []uuid.UUID) error {
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) { return false, nil }

func (f *fakeEventRepo) GetParticipants(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]eventsdto.ParticipantSummary, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetProductIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

type fakeWorkshopRepo struct {
	workshops map[uuid.UUID]*workshopentity.Workshop
}

func newFakeWorkshopRepo() *fakeWorkshopRepo {
	return &fakeWorkshopRepo{workshops: map[uuid.UUID]*workshopentity.Workshop{}}
}

func (f *fakeWorkshopRepo) Create(_ context.Context, w *workshopentity.Workshop, _ []uuid.UUID) (*workshopentity.Workshop, error) {
	f.workshops[w.ID] = w
	return w, nil
}

func (f *fakeWorkshopRepo) GetByID(_ context.Context, id uuid.UUID) (*workshopentity.Workshop, error) {
	return f.workshops[id], nil
}

func (f *fakeWorkshopRepo) GetAll(_ context.Context) ([]workshopentity.Workshop, error) {
	return nil, nil
}

func (f *fakeWorkshopRepo) Update(_ context.Context, w *workshopentity.Workshop, _ []uuid.UUID) error {
	return nil
}

func (f *fakeWorkshopRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeWorkshopRepo) GetParticipants(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]workshopsdto.ParticipantSummary, error) {
	return nil, nil
}

func (f *fakeWorkshopRepo) GetProductIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func newTestService() (*ParticipantService, *fakeParticipantRepo, *fakeEventRepo, *fakeWorkshopRepo) {
	config.Set(&config.Config{
		Registration: config.RegistrationConfig{EnforceCapacity: true},
	})
	repo := newFakeParticipantRepo()
	events := newFakeEventRepo()
	workshops := newFakeWorkshopRepo()
	return NewParticipantService(repo, events, workshops), repo, events, workshops
}

func seedEvent(events *fakeEventRepo, maxParticipants *int) *evententity.Event {
	event := &evententity.Event{
		ID:              uuid.New(),
		Name:            "Arduino basics",
		Type:            evententity.EventTypeWorkshop,
		Location:        evententity.EventLocationInPerson,
		MaxParticipants: maxParticipants,
	}
	events.events[event.ID] = event
	return event
}

func registration(eventID string) *dto.RegisterParticipantRequest {
	return &dto.RegisterParticipantRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		EventID:   eventID,
	}
}

func TestRegisterForEvent(t *testing.T) {
	svc, _, events, _ := newTestService()
	event := seedEvent(events, nil)

	resp, appErr := svc.Register(context.Background(), registration(event.ID.String()))
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	if resp.Participant == nil || resp.Participant.EventID == nil || *resp.Participant.EventID != event.ID {
		t.Fatal("participant not linked to the event")
	}
	if resp.Event == nil || resp.Event.ID != event.ID || resp.Event.Name != event.Name {
		t.Errorf("event summary = %+v", resp.Event)
	}
	if resp.Workshop != nil {
		t.Error("unexpected workshop summary")
	}
}

func TestRegisterStandalone(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, appErr := svc.Register(context.Background(), registration(""))
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	if resp.Participant.EventID != nil || resp.Participant.WorkshopID != nil {
		t.Error("standalone participant has a parent")
	}
	if resp.Event != nil || resp.Workshop != nil {
		t.Error("standalone registration carries a parent summary")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _, events, _ := newTestService()
	event := seedEvent(events, nil)

	req := registration(event.ID.String())
	req.Email = "  Ada@Example.COM "
	resp, appErr := svc.Register(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	if resp.Participant.Email != "ada@example.com" {
		t.Errorf("email = %q, want normalized form", resp.Participant.Email)
	}
}

func TestRegisterRejectsBothParents(t *testing.T) {
	svc, _, events, _ := newTestService()
	event := seedEvent(events, nil)

	req := registration(event.ID.String())
	req.WorkshopID = uuid.NewString()
	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestRegisterInvalidEventID(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, appErr := svc.Register(context.Background(), registration("not-a-uuid"))
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, appErr := svc.Register(context.Background(), registration(uuid.NewString()))
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrNotFound)
	}
}

func TestRegisterMissingNames(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := registration("")
	req.FirstName = ""
	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestRegisterDuplicateEmailSameEvent(t *testing.T) {
	svc, _, events, _ := newTestService()
	event := seedEvent(events, nil)

	if _, appErr := svc.Register(context.Background(), registration(event.ID.String())); appErr != nil {
		t.Fatalf("first Register: %v", appErr)
	}

	// Same email, different case: the duplicate check works on the
	// normalized address.
	req := registration(event.ID.String())
	req.Email = "ADA@example.com"
	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrAlreadyExists)
	}
}

// A duplicate that slips past the pre-check and is caught by the unique
// index must surface the same Conflict as the pre-check path.
func TestRegisterDuplicateRace(t *testing.T) {
	svc, repo, events, _ := newTestService()
	event := seedEvent(events, nil)
	repo.registerErr = repository.ErrDuplicateRegistration

	_, appErr := svc.Register(context.Background(), registration(event.ID.String()))
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrAlreadyExists)
	}
}

func TestRegisterSameEmailDifferentEvents(t *testing.T) {
	svc, _, events, _ := newTestService()
	first := seedEvent(events, nil)
	second := seedEvent(events, nil)

	if _, appErr := svc.Register(context.Background(), registration(first.ID.String())); appErr != nil {
		t.Fatalf("first Register: %v", appErr)
	}
	if _, appErr := svc.Register(context.Background(), registration(second.ID.String())); appErr != nil {
		t.Fatalf("second Register: %v", appErr)
	}
}

func TestRegisterCapacityFull(t *testing.T) {
	svc, repo, events, _ := newTestService()
	limit := 1
	event := seedEvent(events, &limit)
	repo.countByEvent[event.ID] = 1

	_, appErr := svc.Register(context.Background(), registration(event.ID.String()))
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestRegisterCapacityNotEnforcedWhenDisabled(t *testing.T) {
	svc, repo, events, _ := newTestService()
	config.Set(&config.Config{
		Registration: config.RegistrationConfig{EnforceCapacity: false},
	})
	limit := 1
	event := seedEvent(events, &limit)
	repo.countByEvent[event.ID] = 1

	if _, appErr := svc.Register(context.Background(), registration(event.ID.String())); appErr != nil {
		t.Fatalf("Register with enforcement off: %v", appErr)
	}
}

func TestRegisterForWorkshop(t *testing.T) {
	svc, _, _, workshops := newTestService()
	workshop := &workshopentity.Workshop{
		ID:        uuid.New(),
		Name:      "3D printing",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(2 * time.Hour),
		Location:  "Tunis",
	}
	workshops.workshops[workshop.ID] = workshop

	req := registration("")
	req.WorkshopID = workshop.ID.String()
	resp, appErr := svc.Register(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	if resp.Workshop == nil || resp.Workshop.Name != "3D printing" {
		t.Errorf("workshop summary = %+v", resp.Workshop)
	}
}

func TestUpdateRejectsInvalidEmail(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p := &entity.Participant{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	repo.participants[p.ID] = p

	bad := "not-an-email"
	_, appErr := svc.Update(context.Background(), p.ID, &dto.UpdateParticipantRequest{Email: &bad})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestRemove(t *testing.T) {
	svc, repo, _, _ := newTestService()
	p := &entity.Participant{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	repo.participants[p.ID] = p

	if appErr := svc.Remove(context.Background(), p.ID); appErr != nil {
		t.Fatalf("Remove: %v", appErr)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != p.ID {
		t.Error("participant not deleted")
	}

	if appErr := svc.Remove(context.Background(), p.ID); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("second Remove = %v, want %s", appErr, errors.ErrNotFound)
	}
}
