// Package job provides background processing of person events using Asynq.
//
// Asynq is a Redis-backed queue: the service enqueues tasks with
// asynq.Client and the worker server executes them with registered
// handlers.
package job

import (
	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// emailClient is nil when notifications are not configured.
	emailClient *email.Client
	notifyEmail string
}

// NewJobService creates a JobService backed by the Redis in cfg.
//
// Ten workers are shared by ratio between the critical, default and low
// queues.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPersonCreated, j.handlePersonEventTask)
	mux.HandleFunc(TaskPersonUpdated, j.handlePersonEventTask)
	mux.HandleFunc(TaskPersonDeleted, j.handlePersonEventTask)
	return mux
}

// Start launches the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for running tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
