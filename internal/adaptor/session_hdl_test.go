package adaptor

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

// openSessionStream serves Events for one signed-in session and returns a
// reader that yields the next `data:` line of the stream.
func openSessionStream(t *testing.T, h *SessionHandler, userID, session uuid.UUID, expiresAt time.Time) func() string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.SetUserContext(r.Context(), userID, "customer")
		ctx = utils.SetTokenContext(ctx, session.String())
		if !expiresAt.IsZero() {
			ctx = utils.SetSessionExpiryContext(ctx, expiresAt)
		}
		h.Events(w, r.WithContext(ctx))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	return func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: ") {
				return line
			}
		}
	}
}

func TestSessionEvents_Unauthenticated(t *testing.T) {
	h := NewSessionHandler(sessionhub.New(zap.NewNop()), zap.NewNop())
	rec := httptest.NewRecorder()

	h.Events(rec, httptest.NewRequest(http.MethodGet, "/api/session/events", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionEvents_StreamsUntilLogout(t *testing.T) {
	hub := sessionhub.New(zap.NewNop())
	h := NewSessionHandler(hub, zap.NewNop())
	userID, session := uuid.New(), uuid.New()

	readData := openSessionStream(t, h, userID, session, time.Now().Add(time.Hour))
	assert.Contains(t, readData(), `"state":"authenticated"`)

	require.Eventually(t, func() bool { return hub.SubscriberCount(userID) == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(userID, session, sessionhub.StateAnonymous)

	assert.Contains(t, readData(), `"state":"anonymous"`)
	require.Eventually(t, func() bool { return hub.SubscriberCount(userID) == 0 }, time.Second, 10*time.Millisecond)
}

func TestSessionEvents_OtherDeviceLogoutKeepsStream(t *testing.T) {
	hub := sessionhub.New(zap.NewNop())
	h := NewSessionHandler(hub, zap.NewNop())
	userID, phone, laptop := uuid.New(), uuid.New(), uuid.New()

	readData := openSessionStream(t, h, userID, laptop, time.Now().Add(time.Hour))
	assert.Contains(t, readData(), `"state":"authenticated"`)
	require.Eventually(t, func() bool { return hub.SubscriberCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(userID, phone, sessionhub.StateAnonymous)

	// the laptop stream is still subscribed and still reacts to its own logout
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, hub.SubscriberCount(userID))

	hub.Publish(userID, laptop, sessionhub.StateAnonymous)
	assert.Contains(t, readData(), `"state":"anonymous"`)
}

func TestSessionEvents_EndsWhenSessionExpires(t *testing.T) {
	hub := sessionhub.New(zap.NewNop())
	h := NewSessionHandler(hub, zap.NewNop())
	userID := uuid.New()

	readData := openSessionStream(t, h, userID, uuid.New(), time.Now().Add(150*time.Millisecond))

	assert.Contains(t, readData(), `"state":"authenticated"`)
	assert.Contains(t, readData(), `"state":"anonymous"`)
	require.Eventually(t, func() bool { return hub.SubscriberCount(userID) == 0 }, time.Second, 10*time.Millisecond)
}
