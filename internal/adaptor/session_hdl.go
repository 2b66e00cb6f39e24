package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

const sessionKeepAlive = 25 * time.Second

type SessionHandler struct {
	hub *sessionhub.Hub
	log *zap.Logger
}

func NewSessionHandler(hub *sessionhub.Hub, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		hub: hub,
		log: log.With(zap.String("handler", "session")),
	}
}

// Events handles GET /api/session/events (protected). It streams session
// state transitions of the caller's own session as Server-Sent Events until
// the client goes away, the session is signed out or it expires.
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	token, _ := utils.GetTokenFromContext(r.Context())
	sessionID, err := uuid.Parse(token)
	if err != nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	events, cancel := h.hub.Subscribe(userID, sessionID)
	defer cancel()

	// a nil channel never fires, so sessions without a known expiry just stream
	var expired <-chan time.Time
	if expiresAt, ok := utils.GetSessionExpiryFromContext(r.Context()); ok {
		timer := time.NewTimer(time.Until(expiresAt))
		defer timer.Stop()
		expired = timer.C
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// The route is authenticated, so the stream starts from that state.
	if err := writeSessionEvent(w, sessionhub.Event{
		UserID: userID,
		State:  sessionhub.StateAuthenticated,
		At:     time.Now(),
	}); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(sessionKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-expired:
			h.log.Debug("Session expired during stream", zap.String("user_id", userID.String()))
			if err := writeSessionEvent(w, sessionhub.Event{
				UserID: userID,
				State:  sessionhub.StateAnonymous,
				At:     time.Now(),
			}); err == nil {
				flusher.Flush()
			}
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, open := <-events:
			if !open {
				return
			}
			if err := writeSessionEvent(w, event); err != nil {
				h.log.Debug("Session stream write failed", zap.Error(err), zap.String("user_id", userID.String()))
				return
			}
			flusher.Flush()

			if event.State == sessionhub.StateAnonymous {
				return
			}
		}
	}
}

func writeSessionEvent(w http.ResponseWriter, event sessionhub.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: session\ndata: %s\n\n", data)
	return err
}
