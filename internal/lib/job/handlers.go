package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// InitHandlers wires handler dependencies. The email client is only
// created when notifications are configured.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Integration.NotificationsEnabled() {
		return
	}
	j.emailClient = email.NewClient(cfg, logger)
	j.notifyEmail = cfg.Integration.NotifyEmail
}

// handlePersonEventTask logs the event and emails it when notifications
// are enabled. Returning an error makes asynq retry the task.
func (j *JobService) handlePersonEventTask(ctx context.Context, t *asynq.Task) error {
	var p PersonEventPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal person event payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", t.Type()).
		Int64("person_id", p.PersonID).
		Logger()

	logger.Info().Str("event", string(p.Event)).Msg("Processing person event task")

	if j.emailClient == nil {
		return nil
	}

	if err := j.emailClient.SendPersonEventEmail(j.notifyEmail, string(p.Event), p.PersonID, p.Name, p.OccurredAt); err != nil {
		logger.Error().Err(err).Msg("Failed to send person event email")
		return err
	}

	logger.Info().Msg("Successfully sent person event email")

	return nil
}
