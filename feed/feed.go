// Package feed fans accepted submissions out to live admin dashboards.
package feed

import (
	"sync"
	"time"
)

type SubmissionEvent struct {
	FormID       string    `json:"form_id"`
	SubmissionID string    `json:"submission_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

const subscriberBuffer = 16

// Broker is an in-process publish/subscribe hub keyed by form ID. Publishing
// never blocks; a subscriber that falls behind by more than its buffer loses
// events.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan SubmissionEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[chan SubmissionEvent]struct{})}
}

// Subscribe returns a channel of events for one form and a cancel function
// that must be called when the consumer goes away.
func (b *Broker) Subscribe(formID string) (<-chan SubmissionEvent, func()) {
	ch := make(chan SubmissionEvent, subscriberBuffer)

	b.mu.Lock()
	if b.subs[formID] == nil {
		b.subs[formID] = make(map[chan SubmissionEvent]struct{})
	}
	b.subs[formID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[formID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, formID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

func (b *Broker) Publish(evt SubmissionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[evt.FormID] {
		select {
		case ch <- evt:
		default:
		}
	}
}
