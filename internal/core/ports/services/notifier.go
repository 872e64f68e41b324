package services

import "time"

// ActivityEvent is broadcast to connected clients whenever an audit
// entry is appended anywhere in the registry.
type ActivityEvent struct {
	EntityID   string    `json:"entityID"`
	EntityName string    `json:"entityName"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	Actor      string    `json:"actor"`
	Hash       string    `json:"hash"`
	Timestamp  time.Time `json:"timestamp"`
}

// Notifier pushes fire-and-forget events (simulated SMS delivery and
// the live activity feed) to whatever transport is attached.
// Implementations must never block the caller.
type Notifier interface {
	PublishSMS(phoneHint, body string)
	PublishActivity(event ActivityEvent)
}
