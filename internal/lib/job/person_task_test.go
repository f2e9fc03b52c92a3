package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	requests []*resend.SendEmailRequest
	err      error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, params)
	return &resend.SendEmailResponse{Id: "1"}, nil
}

func TestPersonEventTaskType(t *testing.T) {
	assert.Equal(t, "person:created", TaskPersonCreated)
	assert.Equal(t, TaskPersonCreated, PersonCreated.TaskType())
	assert.Equal(t, TaskPersonUpdated, PersonUpdated.TaskType())
	assert.Equal(t, TaskPersonDeleted, PersonDeleted.TaskType())
}

func TestNewPersonEventTask(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	task, err := NewPersonEventTask(PersonUpdated, model.Person{ID: 3, Name: "Ann"}, at)
	require.NoError(t, err)

	assert.Equal(t, TaskPersonUpdated, task.Type())

	var payload PersonEventPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, PersonEventPayload{
		Event:      PersonUpdated,
		PersonID:   3,
		Name:       "Ann",
		OccurredAt: at.UTC(),
	}, payload)
}

func newTestJobService(sender email.Sender) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	if sender != nil {
		j.emailClient = email.NewClientWithSender(sender, &logger)
		j.notifyEmail = "ops@example.com"
	}
	return j
}

func TestHandlePersonEventTaskWithoutEmail(t *testing.T) {
	j := newTestJobService(nil)

	task, err := NewPersonEventTask(PersonCreated, model.Person{ID: 1, Name: "Ann"}, time.Now())
	require.NoError(t, err)

	assert.NoError(t, j.handlePersonEventTask(context.Background(), task))
}

func TestHandlePersonEventTaskSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	j := newTestJobService(sender)

	task, err := NewPersonEventTask(PersonDeleted, model.Person{ID: 9, Name: "Ann"}, time.Now())
	require.NoError(t, err)

	require.NoError(t, j.handlePersonEventTask(context.Background(), task))
	require.Len(t, sender.requests, 1)
	assert.Equal(t, "Person deleted: Ann", sender.requests[0].Subject)
	assert.Equal(t, []string{"ops@example.com"}, sender.requests[0].To)
}

func TestHandlePersonEventTaskRetriesOnSendFailure(t *testing.T) {
	j := newTestJobService(&fakeSender{err: errors.New("unavailable")})

	task, err := NewPersonEventTask(PersonCreated, model.Person{ID: 1, Name: "Ann"}, time.Now())
	require.NoError(t, err)

	assert.Error(t, j.handlePersonEventTask(context.Background(), task))
}

func TestHandlePersonEventTaskRejectsBadPayload(t *testing.T) {
	j := newTestJobService(nil)

	err := j.handlePersonEventTask(context.Background(), asynq.NewTask(TaskPersonCreated, []byte("{")))
	assert.Error(t, err)
}
