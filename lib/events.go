package contador

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventIncrement   = "INCREMENT"
	EventFileRead    = "FILE_READ"
	EventCalculation = "CALCULATION"
)

type Event struct {
	EventId   string    `json:"event_id"`
	Type      string    `json:"event_type"`
	Time      time.Time `json:"time"`
	Count     uint32    `json:"count,omitempty"`
	Bytes     int       `json:"bytes,omitempty"`
	Operation string    `json:"operation,omitempty"`
	Result    float64   `json:"result"`
}

func NewEvent(eventType string) Event {
	return Event{
		EventId: uuid.NewString(),
		Type:    eventType,
		Time:    time.Now().UTC(),
	}
}

type TestResult struct {
	Mean   float64 `json:"mean_latency"`
	Median float64 `json:"median_latency"`
	Min    float64 `json:"min_latency"`
	Max    float64 `json:"max_latency"`
}
