package service

import (
	"sync"
	"time"

	"github.com/bnema/vodpipe/internal/domain"
)

// Event is a state change of one asset.
type Event struct {
	AssetID       string            `json:"id"`
	State         domain.AssetState `json:"state"`
	FailureReason string            `json:"failureReason,omitempty"`
	At            time.Time         `json:"at"`
}

type EventPublisher interface {
	Publish(assetID string, event Event)
}

// subscriberBuffer is how many events a subscriber may lag before new ones
// are dropped for it.
const subscriberBuffer = 16

// EventBus fans asset events out to the SSE streams watching that asset.
type EventBus struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[string]map[chan Event]struct{})}
}

func (eb *EventBus) Subscribe(assetID string) chan Event {
	ch := make(chan Event, subscriberBuffer)

	eb.mu.Lock()
	defer eb.mu.Unlock()
	set, ok := eb.subs[assetID]
	if !ok {
		set = make(map[chan Event]struct{})
		eb.subs[assetID] = set
	}
	set[ch] = struct{}{}
	return ch
}

// Unsubscribe closes ch. Unknown or already removed channels are ignored.
func (eb *EventBus) Unsubscribe(assetID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	set := eb.subs[assetID]
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	close(ch)
	if len(set) == 0 {
		delete(eb.subs, assetID)
	}
}

// Publish never blocks: a full subscriber misses the event.
func (eb *EventBus) Publish(assetID string, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for ch := range eb.subs[assetID] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (eb *EventBus) subscriberCount(assetID string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subs[assetID])
}
