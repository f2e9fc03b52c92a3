package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. They must match PersonEvent.TaskType.
const (
	taskPersonPrefix = "person:"

	TaskPersonCreated = taskPersonPrefix + string(PersonCreated)
	TaskPersonUpdated = taskPersonPrefix + string(PersonUpdated)
	TaskPersonDeleted = taskPersonPrefix + string(PersonDeleted)
)

// PersonEvent names a completed mutation.
type PersonEvent string

const (
	PersonCreated PersonEvent = "created"
	PersonUpdated PersonEvent = "updated"
	PersonDeleted PersonEvent = "deleted"
)

// TaskType returns the asynq task type for the event.
func (e PersonEvent) TaskType() string {
	return taskPersonPrefix + string(e)
}

// PersonEventPayload is the JSON payload of person tasks.
type PersonEventPayload struct {
	Event      PersonEvent `json:"event"`
	PersonID   int64       `json:"person_id"`
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewPersonEventTask builds the task for event on person. Tasks go to the
// low queue with three retries and a 30 second timeout.
func NewPersonEventTask(event PersonEvent, person model.Person, occurredAt time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(PersonEventPayload{
		Event:      event,
		PersonID:   person.ID,
		Name:       person.Name,
		OccurredAt: occurredAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		event.TaskType(),
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}

// PublishPersonEvent enqueues a person event.
func (j *JobService) PublishPersonEvent(ctx context.Context, event PersonEvent, person model.Person) error {
	task, err := NewPersonEventTask(event, person, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build %s task: %w", event, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", event, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("type", task.Type()).
		Msg("enqueued person event")

	return nil
}
