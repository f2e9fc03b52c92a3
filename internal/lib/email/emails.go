package email

import (
	"html"
	"strconv"
	"time"
)

// SendPersonEventEmail notifies to that a person was created, updated or
// deleted. Stored names are HTML-escaped; they are unescaped here because
// the template escapes again.
func (c *Client) SendPersonEventEmail(to, event string, personID int64, personName string, occurredAt time.Time) error {
	data := map[string]string{
		"Event":      event,
		"PersonID":   strconv.FormatInt(personID, 10),
		"PersonName": html.UnescapeString(personName),
		"OccurredAt": occurredAt.UTC().Format(time.RFC3339),
	}

	return c.SendEmail(
		to,
		"Person "+event+": "+html.UnescapeString(personName),
		TemplatePersonEvent,
		data,
	)
}
