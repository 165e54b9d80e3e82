package worker

import (
	"context"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"

	"github.com/hibiken/asynq"
)

type rosterReconciler struct {
	db database.IDatabase
}

func newRosterReconciler(db database.IDatabase) *rosterReconciler {
	return &rosterReconciler{db: db}
}

// ProcessTask repairs both roster tables: it re-adds roster rows for
// participants whose parent reference survived without one, and drops
// roster rows whose participant no longer references that parent. Each
// statement is idempotent, so overlapping runs are harmless.
func (r *rosterReconciler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	statements := []string{
		`INSERT INTO event_participants (event_id, participant_id)
		 SELECT p.event_id, p.id FROM participants p
		 WHERE p.event_id IS NOT NULL
		 ON CONFLICT DO NOTHING`,
		`DELETE FROM event_participants ep
		 WHERE NOT EXISTS (
			SELECT 1 FROM participants p
			WHERE p.id = ep.participant_id AND p.event_id = ep.event_id
		 )`,
		`INSERT INTO workshop_participants (workshop_id, participant_id)
		 SELECT p.workshop_id, p.id FROM participants p
		 WHERE p.workshop_id IS NOT NULL
		 ON CONFLICT DO NOTHING`,
		`DELETE FROM workshop_participants wp
		 WHERE NOT EXISTS (
			SELECT 1 FROM participants p
			WHERE p.id = wp.participant_id AND p.workshop_id = wp.workshop_id
		 )`,
	}

	for _, stmt := range statements {
		if err := r.db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Worker:RosterReconcile", err)
			return err
		}
	}

	logger.Info("Worker:RosterReconcile:Done")
	return nil
}
