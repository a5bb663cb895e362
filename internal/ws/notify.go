package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventMatchesGenerated = "matches_generated"

type MatchesGeneratedEvent struct {
	Type         string `json:"type"`
	TotalMatches int    `json:"totalMatches"`
	Timestamp    string `json:"timestamp"`
}

// Notifier pushes match events to the owning user's connections.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchesGenerated(userID uuid.UUID, total int, at time.Time) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(MatchesGeneratedEvent{
		Type:         EventMatchesGenerated,
		TotalMatches: total,
		Timestamp:    at.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.SendToUser(userID, b)
}
