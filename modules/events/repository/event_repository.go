package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/events/dto"
	"makerskills-api/modules/events/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event, productIDs []uuid.UUID) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event, productIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetParticipants(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]dto.ParticipantSummary, error)
	GetProductIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `
	id, name, type, description, price, reduction, duration, start_date,
	periode, animator, location, address, certification, cover_image,
	objectives, required, included, max_participants, category_id,
	created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event, productIDs []uuid.UUID) (*entity.Event, error) {
	query := `
		INSERT INTO events (
			name, type, description, price, reduction, duration, start_date,
			periode, animator, location, address, certification, cover_image,
			objectives, required, included, max_participants, category_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name, event.Type, event.Description, event.Price, event.Reduction,
		event.Duration, event.StartDate, event.Periode, event.Animator,
		event.Location, event.Address, event.Certification, event.CoverImage,
		event.Objectives, event.Required, event.Included,
		event.MaxParticipants, event.CategoryID,
	)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	if err := r.replaceProducts(ctx, created.ID, productIDs); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT` + eventColumns + ` FROM events WHERE id = $1`
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	query := `SELECT` + eventColumns + ` FROM events ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &events, query); err != nil {
		logger.Error("EventRepository:GetAll", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event, productIDs []uuid.UUID) error {
	query := `
		UPDATE events
		SET name = $1, type = $2, description = $3, price = $4, reduction = $5,
			duration = $6, start_date = $7, periode = $8, animator = $9,
			location = $10, address = $11, certification = $12, cover_image = $13,
			objectives = $14, required = $15, included = $16,
			max_participants = $17, category_id = $18, updated_at = now()
		WHERE id = $19
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		event.Name, event.Type, event.Description, event.Price, event.Reduction,
		event.Duration, event.StartDate, event.Periode, event.Animator,
		event.Location, event.Address, event.Certification, event.CoverImage,
		event.Objectives, event.Required, event.Included,
		event.MaxParticipants, event.CategoryID, event.ID,
	)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}

	if productIDs != nil {
		return r.replaceProducts(ctx, event.ID, productIDs)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetParticipants expands roster references into participant summaries
// for a batch of events in one query.
func (r *EventRepository) GetParticipants(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]dto.ParticipantSummary, error) {
	if len(eventIDs) == 0 {
		return map[uuid.UUID][]dto.ParticipantSummary{}, nil
	}

	type row struct {
		EventID   uuid.UUID `db:"event_id"`
		ID        uuid.UUID `db:"id"`
		FirstName string    `db:"first_name"`
		LastName  string    `db:"last_name"`
		Email     string    `db:"email"`
	}

	var rows []row
	query := `
		SELECT ep.event_id, p.id, p.first_name, p.last_name, p.email
		FROM event_participants ep
		JOIN participants p ON p.id = ep.participant_id
		WHERE ep.event_id = ANY($1)
		ORDER BY p.created_at
	`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(eventIDs)); err != nil {
		logger.Error("EventRepository:GetParticipants", err)
		return nil, err
	}

	result := make(map[uuid.UUID][]dto.ParticipantSummary, len(eventIDs))
	for _, rw := range rows {
		result[rw.EventID] = append(result[rw.EventID], dto.ParticipantSummary{
			ID:        rw.ID,
			FirstName: rw.FirstName,
			LastName:  rw.LastName,
			Email:     rw.Email,
		})
	}
	return result, nil
}

func (r *EventRepository) GetProductIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT product_id FROM event_products WHERE event_id = $1`
	if err := r.DB.SelectContext(ctx, &ids, query, eventID); err != nil {
		logger.Error("EventRepository:GetProductIDs", err)
		return nil, err
	}
	return ids, nil
}

func (r *EventRepository) replaceProducts(ctx context.Context, eventID uuid.UUID, productIDs []uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM event_products WHERE event_id = $1`, eventID); err != nil {
		logger.Error("EventRepository:ReplaceProducts", err)
		return err
	}
	for _, pid := range productIDs {
		err := r.DB.ExecContext(ctx,
			`INSERT INTO event_products (event_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			eventID, pid)
		if err != nil {
			logger.Error("EventRepository:ReplaceProducts", err)
			return err
		}
	}
	return nil
}
