package email

import (
	"errors"
	"testing"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Render(name, data)
			require.NoError(t, err)
			for _, value := range data {
				assert.Contains(t, body, value)
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestSendPersonEventEmail(t *testing.T) {
	logger := zerolog.Nop()
	sender := &fakeSender{}
	client := NewClientWithSender(sender, &logger)

	occurredAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err := client.SendPersonEventEmail("ops@example.com", "created", 7, "Tom &amp; Jerry", occurredAt)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"ops@example.com"}, msg.To)
	assert.Equal(t, "Person created: Tom & Jerry", msg.Subject)
	assert.Contains(t, msg.Html, "Tom &amp; Jerry")
	assert.NotContains(t, msg.Html, "&amp;amp;")
	assert.Contains(t, msg.Html, "2024-05-01T12:00:00Z")
}

func TestSendEmailPropagatesSenderError(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("rate limited")}, &logger)

	err := client.SendEmail("ops@example.com", "hi", TemplatePersonEvent, PreviewData[TemplatePersonEvent])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
