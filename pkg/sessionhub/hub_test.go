package sessionhub

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_PublishReachesOnlyThatUser(t *testing.T) {
	hub := New(zap.NewNop())
	alice, bob := uuid.New(), uuid.New()

	aliceCh, cancelAlice := hub.Subscribe(alice, uuid.New())
	defer cancelAlice()
	bobCh, cancelBob := hub.Subscribe(bob, uuid.New())
	defer cancelBob()

	hub.Publish(alice, uuid.Nil, StateAuthenticated)

	select {
	case ev := <-aliceCh:
		assert.Equal(t, alice, ev.UserID)
		assert.Equal(t, StateAuthenticated, ev.State)
	default:
		t.Fatal("expected an event for alice")
	}

	select {
	case ev := <-bobCh:
		t.Fatalf("unexpected event for bob: %+v", ev)
	default:
	}
}

func TestHub_PublishTargetsOneSession(t *testing.T) {
	hub := New(zap.NewNop())
	user := uuid.New()
	phone, laptop := uuid.New(), uuid.New()

	phoneCh, cancelPhone := hub.Subscribe(user, phone)
	defer cancelPhone()
	laptopCh, cancelLaptop := hub.Subscribe(user, laptop)
	defer cancelLaptop()

	hub.Publish(user, phone, StateAnonymous)

	require.Len(t, phoneCh, 1)
	assert.Equal(t, StateAnonymous, (<-phoneCh).State)
	assert.Empty(t, laptopCh)

	// uuid.Nil reaches every session of the user
	hub.Publish(user, uuid.Nil, StateAnonymous)
	assert.Len(t, phoneCh, 1)
	assert.Len(t, laptopCh, 1)
}

func TestHub_TransitionsArriveInOrder(t *testing.T) {
	hub := New(zap.NewNop())
	user := uuid.New()
	ch, cancel := hub.Subscribe(user, uuid.New())
	defer cancel()

	hub.Publish(user, uuid.Nil, StateAuthenticated)
	hub.Publish(user, uuid.Nil, StateAnonymous)

	first := <-ch
	second := <-ch
	assert.Equal(t, StateAuthenticated, first.State)
	assert.Equal(t, StateAnonymous, second.State)
}

func TestHub_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	hub := New(zap.NewNop())
	user := uuid.New()
	ch, cancel := hub.Subscribe(user, uuid.New())
	defer cancel()

	for i := 0; i < subscriberBufferSize*2; i++ {
		hub.Publish(user, uuid.Nil, StateAuthenticated)
	}

	assert.Len(t, ch, subscriberBufferSize)
}

func TestHub_CancelUnsubscribesAndCloses(t *testing.T) {
	hub := New(zap.NewNop())
	user := uuid.New()
	ch, cancel := hub.Subscribe(user, uuid.New())
	require.Equal(t, 1, hub.SubscriberCount(user))

	cancel()
	cancel()

	assert.Equal(t, 0, hub.SubscriberCount(user))
	_, open := <-ch
	assert.False(t, open)

	hub.Publish(user, uuid.Nil, StateAnonymous)
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := New(zap.NewNop())
	userID := uuid.New()

	events, cancel := hub.Subscribe(userID, uuid.New())
	hub.Close()

	_, open := <-events
	assert.False(t, open)
	assert.Zero(t, hub.SubscriberCount(userID))

	cancel()

	late, _ := hub.Subscribe(userID, uuid.New())
	_, open = <-late
	assert.False(t, open)
}
