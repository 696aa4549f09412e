package events

import (
	"sync"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
)

// StatusEvent is published on every committed proposal status transition.
type StatusEvent struct {
	PID       uint            `json:"pid"`
	Code      string          `json:"proposal_code"`
	From      proposal.Status `json:"from"`
	To        proposal.Status `json:"to"`
	Timestamp time.Time       `json:"timestamp"`
}

// Bus is a small in-process fan-out for status events. Publish never blocks:
// a subscriber that cannot keep up drops events rather than stalling a
// transition.
type Bus struct {
	mu   sync.Mutex
	subs map[chan StatusEvent]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[chan StatusEvent]struct{})}
}

// Subscribe registers a buffered channel; the returned cancel removes it and
// closes the channel.
func (b *Bus) Subscribe() (<-chan StatusEvent, func()) {
	ch := make(chan StatusEvent, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *Bus) Publish(evt StatusEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
