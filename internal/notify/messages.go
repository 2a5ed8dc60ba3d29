package notify

import (
	"encoding/json"
	"time"
)

// Notification is the wire form of one feedback message published to the
// broker for external consumers (a toast widget, a bot, an audit trail).
type Notification struct {
	Message   string    `json:"message"`
	Variant   Variant   `json:"variant"`
	Timestamp time.Time `json:"timestamp"`
}

func NewNotification(message string, variant Variant) *Notification {
	return &Notification{
		Message:   message,
		Variant:   variant,
		Timestamp: time.Now(),
	}
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func NotificationFromJSON(data []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
