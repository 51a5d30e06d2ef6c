package types

import (
	"encoding/json"
	"time"
)

// NotificationEvent is a message on the in-process bus describing a
// service-request state change. The notification handler consumes these
// and dispatches WhatsApp messages; delivery failures never reach the
// mutation that published the event.
type NotificationEvent struct {
	ID        string          `json:"id"`
	EventName string          `json:"event_name"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// service request event names
const (
	EventRequestCreated       = "request.created"
	EventRequestStatusChanged = "request.status_changed"
)
