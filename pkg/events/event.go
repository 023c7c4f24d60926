package events

import "time"

// Event is anything that can be put on the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the concrete event used by publishers and rebuilt by subscribers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string               { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }

// String reads a string field from the payload.
func (e BaseEvent) String(key string) string {
	s, _ := e.Data[key].(string)
	return s
}
