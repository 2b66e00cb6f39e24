// Package sessionhub publishes session state transitions
// (anonymous → authenticated → anonymous) to subscribers such as the
// SSE stream a client route guard listens on. Subscribers are grouped by
// user and each one belongs to a single login session, so signing out on
// one device leaves the user's other devices alone.
package sessionhub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Event is a single session transition.
type Event struct {
	UserID uuid.UUID `json:"user_id"`
	State  State     `json:"state"`
	At     time.Time `json:"at"`
}

// subscriberBufferSize bounds the per-subscriber queue. When it is full
// further events for that subscriber are dropped.
const subscriberBufferSize = 16

type subscriber struct {
	session uuid.UUID
	ch      chan Event
	closed  bool
}

type Hub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID][]*subscriber
	closed      bool
	log         *zap.Logger
}

func New(log *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID][]*subscriber),
		log:         log.With(zap.String("component", "sessionhub")),
	}
}

// Subscribe registers a listener for one login session of a user. The
// returned cancel func unregisters and closes the channel; calling it again
// is a no-op.
func (h *Hub) Subscribe(userID, session uuid.UUID) (<-chan Event, func()) {
	sub := &subscriber{session: session, ch: make(chan Event, subscriberBufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	h.subscribers[userID] = append(h.subscribers[userID], sub)
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.remove(userID, sub)
			if !sub.closed {
				sub.closed = true
				close(sub.ch)
			}
		})
	}
	return sub.ch, cancel
}

// Publish delivers the transition to the subscribers of one session.
// uuid.Nil as session reaches every session of the user. It never blocks
// on slow subscribers.
func (h *Hub) Publish(userID, session uuid.UUID, state State) {
	event := Event{UserID: userID, State: state, At: time.Now()}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers[userID] {
		if session != uuid.Nil && sub.session != session {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			h.log.Warn("Dropping session event for slow subscriber",
				zap.String("user_id", userID.String()),
				zap.String("state", string(state)),
			)
		}
	}
}

// Close ends every open subscription. Later subscriptions get an already
// closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for userID, subs := range h.subscribers {
		for _, sub := range subs {
			if !sub.closed {
				sub.closed = true
				close(sub.ch)
			}
		}
		delete(h.subscribers, userID)
	}
}

// SubscriberCount reports how many listeners a user currently has.
func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[userID])
}

// must be called with h.mu held
func (h *Hub) remove(userID uuid.UUID, sub *subscriber) {
	subs := h.subscribers[userID]
	for i, existing := range subs {
		if existing == sub {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(h.subscribers, userID)
	} else {
		h.subscribers[userID] = subs
	}
}
