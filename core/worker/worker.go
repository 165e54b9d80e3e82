package worker

import (
	"makerskills-api/core/config"
	"makerskills-api/core/database"
	"makerskills-api/core/logger"

	"github.com/hibiken/asynq"
)

const TypeRosterReconcile = "roster:reconcile"

// Worker runs the opportunistic repair jobs. Registration itself is
// transactional, but an event or workshop deleted out from under its
// roster leaves participants pointing nowhere; the periodic reconcile
// brings the roster tables and the participant rows back into agreement.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func Start(db database.IDatabase, cfg config.RedisConfig) (*Worker, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Logger:      asynqLogger{},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeRosterReconcile, newRosterReconciler(db))

	if err := server.Start(mux); err != nil {
		return nil, err
	}

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: asynqLogger{},
	})
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeRosterReconcile, nil)); err != nil {
		server.Shutdown()
		return nil, err
	}
	if err := scheduler.Start(); err != nil {
		server.Shutdown()
		return nil, err
	}

	logger.Info("Background worker started")
	return &Worker{server: server, scheduler: scheduler}, nil
}

func (w *Worker) Stop() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// asynqLogger routes asynq's internal logging through core/logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq", "msg", args) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq", "msg", args) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq", "msg", args) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq", "msg", args) }
func (asynqLogger) Fatal(args ...any) { logger.Error("asynq", "msg", args) }
