package mail

import (
	"testing"
	"time"

	"autoluxe/internal/store"
	"autoluxe/pkg/logger"
)

func TestMockSendBroadcastsAfterDelay(t *testing.T) {
	events := store.NewNotifier()
	mock := NewMock(events, 5*time.Millisecond, "", logger.NewNop())

	received := make(chan store.Event, 1)
	events.Subscribe(store.ChannelMail, func(e store.Event) {
		received <- e
	})

	start := time.Now()
	done := mock.Send("jean@x.com", "Welcome", "Thanks for signing up")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("send never resolved")
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("send resolved before the configured delay")
	}

	select {
	case event := <-received:
		email := event.Email
		if email == nil {
			t.Fatal("mail event carried no message record")
		}
		if email.ID == "" {
			t.Error("expected generated message id")
		}
		if email.To != "jean@x.com" || email.Subject != "Welcome" || email.Body != "Thanks for signing up" {
			t.Errorf("message fields wrong: %+v", email)
		}
		if email.From != DefaultFrom {
			t.Errorf("from = %q, want default sender", email.From)
		}
		if email.Timestamp.IsZero() {
			t.Error("expected timestamp set")
		}
	default:
		t.Fatal("broadcast did not happen before done resolved")
	}
}

func TestMockSendNeverFails(t *testing.T) {
	// No subscribers at all: delivery still resolves
	mock := NewMock(store.NewNotifier(), time.Millisecond, "sales@autoluxe.com", logger.NewNop())

	select {
	case <-mock.Send("nobody@x.com", "s", "b"):
	case <-time.After(time.Second):
		t.Fatal("send never resolved")
	}
}
