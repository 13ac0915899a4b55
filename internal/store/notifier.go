package store

import (
	"sync"

	"autoluxe/internal/models"
)

type Channel string

const (
	ChannelInventory Channel = "inventory-changed"
	ChannelAuth      Channel = "auth-changed"
	ChannelRequests  Channel = "requests-changed"
	ChannelMail      Channel = "mail-incoming"
)

// Event is the mutation notification broadcast after a table write. Only the
// mail channel carries a payload; consumers of the other channels re-fetch
// the affected table themselves.
type Event struct {
	Channel Channel       `json:"channel"`
	Email   *models.Email `json:"email,omitempty"`
}

// Notifier invokes subscribers synchronously, in registration order, after a
// successful mutation. Listeners run before the triggering call returns;
// there is no ordering guarantee beyond happens-after-write.
type Notifier struct {
	mutex       sync.RWMutex
	subscribers map[Channel][]func(Event)
}

func NewNotifier() *Notifier {
	return &Notifier{subscribers: make(map[Channel][]func(Event))}
}

func (n *Notifier) Subscribe(channel Channel, fn func(Event)) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.subscribers[channel] = append(n.subscribers[channel], fn)
}

// SubscribeAll registers a callback on every channel.
func (n *Notifier) SubscribeAll(fn func(Event)) {
	for _, channel := range []Channel{ChannelInventory, ChannelAuth, ChannelRequests, ChannelMail} {
		n.Subscribe(channel, fn)
	}
}

func (n *Notifier) Publish(event Event) {
	n.mutex.RLock()
	subscribers := make([]func(Event), len(n.subscribers[event.Channel]))
	copy(subscribers, n.subscribers[event.Channel])
	n.mutex.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
