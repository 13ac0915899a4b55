// Package mail simulates email delivery for the showcase. Nothing here
// touches a real transport; the SMTP relay lives in pkg/mailer and shares no
// state with this channel.
package mail

import (
	"time"

	"autoluxe/internal/models"
	"autoluxe/internal/store"
	"autoluxe/internal/utils"
	"autoluxe/pkg/logger"
)

const DefaultFrom = "no-reply@autoluxe.com"

// Mock delivers by waiting a fixed delay, then broadcasting the constructed
// message on the mail-incoming channel for the toast UI. It has no failure
// path.
type Mock struct {
	events *store.Notifier
	delay  time.Duration
	from   string
	logger *logger.Logger
}

func NewMock(events *store.Notifier, delay time.Duration, from string, log *logger.Logger) *Mock {
	if delay <= 0 {
		delay = utils.DefaultMailDelay
	}
	if from == "" {
		from = DefaultFrom
	}
	return &Mock{
		events: events,
		delay:  delay,
		from:   from,
		logger: log,
	}
}

// Send resolves after the configured delay. The returned channel closes once
// the message has been broadcast.
func (m *Mock) Send(to, subject, body string) <-chan struct{} {
	done := make(chan struct{})

	time.AfterFunc(m.delay, func() {
		email := &models.Email{
			ID:        utils.GenerateRandomBase36String(9),
			To:        to,
			From:      m.from,
			Subject:   subject,
			Body:      body,
			Timestamp: time.Now(),
		}
		m.events.Publish(store.Event{Channel: store.ChannelMail, Email: email})
		m.logger.WithField("to", to).WithField("subject", subject).Debug("mock email delivered")
		close(done)
	})

	return done
}
