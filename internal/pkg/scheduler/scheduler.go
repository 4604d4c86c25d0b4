package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rental-service/config"
	"rental-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeExpirePendingBooking = "booking:expire_pending"

	MonitoringPath = "/monitoring"
)

// ExpirePendingBooking is the payload of TypeExpirePendingBooking.
type ExpirePendingBooking struct {
	BookingID int64 `json:"booking_id" validate:"required"`
}

// Enqueuer schedules background work for later.
type Enqueuer interface {
	EnqueueExpirePending(ctx context.Context, bookingID int64, at time.Time) error
}

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Monitoring returns the asynqmon UI rooted at MonitoringPath. The caller
// decides how it is exposed and who may see it.
func (s *Scheduler) Monitoring(cfg *config.RedisConfig) http.Handler {
	return asynqmon.New(asynqmon.Options{
		RootPath:     MonitoringPath,
		RedisConnOpt: redisOpt(cfg),
	})
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}

type enqueuer struct {
	client *asynq.Client
	log    log.Logger
}

func NewEnqueuer(client *asynq.Client, log log.Logger) Enqueuer {
	return &enqueuer{client: client, log: log}
}

func (e *enqueuer) EnqueueExpirePending(ctx context.Context, bookingID int64, at time.Time) error {
	payload, err := json.Marshal(ExpirePendingBooking{BookingID: bookingID})
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx,
		asynq.NewTask(TypeExpirePendingBooking, payload),
		asynq.ProcessAt(at),
		asynq.TaskID(fmt.Sprintf("expire-booking-%d", bookingID)),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	e.log.Info(ctx, fmt.Sprintf("scheduled %s for booking %d at %s (task %s)", TypeExpirePendingBooking, bookingID, at.Format(time.RFC3339), info.ID))
	return nil
}
