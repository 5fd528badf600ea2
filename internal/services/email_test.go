package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

type recordingMailer struct {
	to, subject string
	err         error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject = to, subject
	return m.err
}

type stubRenderer struct {
	name string
	err  error
}

func (r *stubRenderer) Render(name string, data any) (string, string, string, error) {
	r.name = name
	return "subject " + name, "<p>html</p>", "text", r.err
}

func TestEmailService(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation", func(t *testing.T) {
		mailer, renderer := &recordingMailer{}, &stubRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger())
		require.NoError(t, svc.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{Email: "a@example.com"}))
		assert.Equal(t, templateRegistrationConfirmation, renderer.name)
		assert.Equal(t, "a@example.com", mailer.to)
		assert.Equal(t, "subject registration_confirmation", mailer.subject)
	})

	t.Run("coordinator", func(t *testing.T) {
		mailer, renderer := &recordingMailer{}, &stubRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger())
		require.NoError(t, svc.SendCoordinatorNotification(ctx, &domain.CoordinatorEmailData{Email: "c@example.com"}))
		assert.Equal(t, templateCoordinatorNotification, renderer.name)
		assert.Equal(t, "c@example.com", mailer.to)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&recordingMailer{}, &stubRenderer{}, discardLogger())
		assert.Error(t, svc.SendRegistrationConfirmation(ctx, nil))
		assert.Error(t, svc.SendCoordinatorNotification(ctx, nil))
	})

	t.Run("render and send errors", func(t *testing.T) {
		svc := NewEmailService(&recordingMailer{}, &stubRenderer{err: errors.New("bad template")}, discardLogger())
		assert.ErrorContains(t, svc.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{}), "render")

		svc = NewEmailService(&recordingMailer{err: errors.New("rejected")}, &stubRenderer{}, discardLogger())
		assert.ErrorContains(t, svc.SendCoordinatorNotification(ctx, &domain.CoordinatorEmailData{}), "rejected")
	})
}
