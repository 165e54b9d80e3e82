package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/participants/dto"
	"makerskills-api/modules/participants/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateRegistration is returned when the unique index on
// (parent, lower(email)) rejects an insert that slipped past the
// application pre-check.
var ErrDuplicateRegistration = stderrors.New("participant already registered for this parent")

type ParticipantRepositoryInterface interface {
	RegisterForEvent(ctx context.Context, participant *entity.Participant, eventID uuid.UUID) (*entity.Participant, error)
	RegisterForWorkshop(ctx context.Context, participant *entity.Participant, workshopID uuid.UUID) (*entity.Participant, error)
	Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, error)
	GroupedByEvent(ctx context.Context) ([]dto.EventGroup, error)
	GetEventsByEmail(ctx context.Context, email string) ([]dto.RegisteredEvent, error)
	ExistsForEvent(ctx context.Context, eventID uuid.UUID, email string) (bool, error)
	ExistsForWorkshop(ctx context.Context, workshopID uuid.UUID, email string) (bool, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int, error)
	Update(ctx context.Context, participant *entity.Participant) error
	Delete(ctx context.Context, participant *entity.Participant) error
}

type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

const participantColumns = `
	id, first_name, last_name, email, phone, date_of_birth, address,
	city, country, event_id, workshop_id, created_at, updated_at`

const insertParticipant = `
	INSERT INTO participants (
		first_name, last_name, email, phone, date_of_birth, address,
		city, country, event_id, workshop_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING` + participantColumns

// RegisterForEvent creates the participant and appends it to the event
// roster in one transaction. The roster insert uses set semantics so a
// concurrent duplicate append cannot create a repeated entry; a unique
// violation on the participant row maps to ErrDuplicateRegistration.
func (r *ParticipantRepository) RegisterForEvent(ctx context.Context, participant *entity.Participant, eventID uuid.UUID) (*entity.Participant, error) {
	return r.register(ctx, participant, "event_participants", "event_id", eventID)
}

func (r *ParticipantRepository) RegisterForWorkshop(ctx context.Context, participant *entity.Participant, workshopID uuid.UUID) (*entity.Participant, error) {
	return r.register(ctx, participant, "workshop_participants", "workshop_id", workshopID)
}

func (r *ParticipantRepository) register(ctx context.Context, participant *entity.Participant, rosterTable, parentColumn string, parentID uuid.UUID) (*entity.Participant, error) {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("ParticipantRepository:Register:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	var created entity.Participant
	err = tx.GetContext(ctx, &created, insertParticipant,
		participant.FirstName, participant.LastName, participant.Email,
		participant.Phone, participant.DateOfBirth, participant.Address,
		participant.City, participant.Country,
		participant.EventID, participant.WorkshopID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		logger.Error("ParticipantRepository:Register:Insert", err)
		return nil, err
	}

	rosterInsert := `INSERT INTO ` + rosterTable + ` (` + parentColumn + `, participant_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := tx.ExecContext(ctx, rosterInsert, parentID, created.ID); err != nil {
		logger.Error("ParticipantRepository:Register:Roster", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		logger.Error("ParticipantRepository:Register:Commit", err)
		return nil, err
	}
	return &created, nil
}

// Create stores a participant with no parent context.
func (r *ParticipantRepository) Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, insertParticipant,
		participant.FirstName, participant.LastName, participant.Email,
		participant.Phone, participant.DateOfBirth, participant.Address,
		participant.City, participant.Country,
		participant.EventID, participant.WorkshopID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	var participant entity.Participant
	query := `SELECT` + participantColumns + ` FROM participants WHERE id = $1`
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}
	return &participant, nil
}

func (r *ParticipantRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, error) {
	var participants []entity.Participant
	query := `SELECT` + participantColumns + ` FROM participants WHERE event_id = $1 ORDER BY created_at`
	if err := r.DB.SelectContext(ctx, &participants, query, eventID); err != nil {
		logger.Error("ParticipantRepository:GetByEventID", err)
		return nil, err
	}
	return participants, nil
}

// GroupedByEvent lists every event-bound participant bucketed under its
// event, with the event summary pulled in at read time.
func (r *ParticipantRepository) GroupedByEvent(ctx context.Context) ([]dto.EventGroup, error) {
	type row struct {
		entity.Participant
		EventName  string   `db:"event_name"`
		EventPrice *float64 `db:"event_price"`
	}

	var rows []row
	query := `
		SELECT p.id, p.first_name, p.last_name, p.email, p.phone,
			p.date_of_birth, p.address, p.city, p.country,
			p.event_id, p.workshop_id, p.created_at, p.updated_at,
			e.name AS event_name, e.price AS event_price
		FROM participants p
		JOIN events e ON e.id = p.event_id
		WHERE p.event_id IS NOT NULL
		ORDER BY e.created_at DESC, p.created_at
	`
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		logger.Error("ParticipantRepository:GroupedByEvent", err)
		return nil, err
	}

	groups := make([]dto.EventGroup, 0)
	index := make(map[uuid.UUID]int)
	for _, rw := range rows {
		eventID := *rw.EventID
		i, ok := index[eventID]
		if !ok {
			i = len(groups)
			index[eventID] = i
			groups = append(groups, dto.EventGroup{
				EventID:      eventID,
				EventName:    rw.EventName,
				Price:        rw.EventPrice,
				Participants: []entity.Participant{},
			})
		}
		groups[i].Participants = append(groups[i].Participants, rw.Participant)
	}
	return groups, nil
}

func (r *ParticipantRepository) GetEventsByEmail(ctx context.Context, email string) ([]dto.RegisteredEvent, error) {
	var events []dto.RegisteredEvent
	query := `
		SELECT e.id, e.name, e.description, e.price, e.start_date
		FROM participants p
		JOIN events e ON e.id = p.event_id
		WHERE lower(p.email) = $1 AND p.event_id IS NOT NULL
		ORDER BY e.start_date
	`
	if err := r.DB.SelectContext(ctx, &events, query, email); err != nil {
		logger.Error("ParticipantRepository:GetEventsByEmail", err)
		return nil, err
	}
	return events, nil
}

func (r *ParticipantRepository) ExistsForEvent(ctx context.Context, eventID uuid.UUID, email string) (bool, error) {
	return r.exists(ctx, "event_id", eventID, email)
}

func (r *ParticipantRepository) ExistsForWorkshop(ctx context.Context, workshopID uuid.UUID, email string) (bool, error) {
	return r.exists(ctx, "workshop_id", workshopID, email)
}

func (r *ParticipantRepository) exists(ctx context.Context, parentColumn string, parentID uuid.UUID, email string) (bool, error) {
	var found bool
	query := `SELECT EXISTS (
		SELECT 1 FROM participants WHERE ` + parentColumn + ` = $1 AND lower(email) = $2
	)`
	if err := r.DB.GetContext(ctx, &found, query, parentID, email); err != nil {
		logger.Error("ParticipantRepository:Exists", err)
		return false, err
	}
	return found, nil
}

func (r *ParticipantRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	return r.count(ctx, "event_id", eventID)
}

func (r *ParticipantRepository) CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int, error) {
	return r.count(ctx, "workshop_id", workshopID)
}

func (r *ParticipantRepository) count(ctx context.Context, parentColumn string, parentID uuid.UUID) (int, error) {
	var n int
	query := `SELECT count(*) FROM participants WHERE ` + parentColumn + ` = $1`
	if err := r.DB.GetContext(ctx, &n, query, parentID); err != nil {
		logger.Error("ParticipantRepository:Count", err)
		return 0, err
	}
	return n, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entity.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			date_of_birth = $5, address = $6, city = $7, country = $8,
			updated_at = now()
		WHERE id = $9
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		participant.FirstName, participant.LastName, participant.Email,
		participant.Phone, participant.DateOfBirth, participant.Address,
		participant.City, participant.Country, participant.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRegistration
		}
		logger.Error("ParticipantRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the participant and pulls it from its parent roster in
// one transaction. The roster delete is a no-op when the parent is
// already gone.
func (r *ParticipantRepository) Delete(ctx context.Context, participant *entity.Participant) error {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("ParticipantRepository:Delete:Begin", err)
		return err
	}
	defer tx.Rollback()

	if participant.EventID != nil {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM event_participants WHERE event_id = $1 AND participant_id = $2`,
			*participant.EventID, participant.ID)
		if err != nil {
			logger.Error("ParticipantRepository:Delete:Roster", err)
			return err
		}
	}
	if participant.WorkshopID != nil {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM workshop_participants WHERE workshop_id = $1 AND participant_id = $2`,
			*participant.WorkshopID, participant.ID)
		if err != nil {
			logger.Error("ParticipantRepository:Delete:Roster", err)
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, participant.ID); err != nil {
		logger.Error("ParticipantRepository:Delete", err)
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
