package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// PreferencesUpdatedEvent tells attached dashboards that a position's
// matching criteria changed and its candidate list should be refetched.
type PreferencesUpdatedEvent struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	PositionID int64  `json:"positionId"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyPreferencesUpdated(positionID int64) {
	h := defaultHub.Load()
	if h == nil || positionID <= 0 {
		return
	}

	evt := PreferencesUpdatedEvent{
		ID:         uuid.NewString(),
		Type:       "preferences_updated",
		PositionID: positionID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
