package publishers

import (
	"time"

	"github.com/google/uuid"
)

// Event announces that the schedule behind a watch target changed.
type Event struct {
	ID             string    `json:"id"`
	TargetID       string    `json:"target_id"`
	TargetName     string    `json:"target_name,omitempty"`
	Kind           string    `json:"kind"`
	Value          string    `json:"value"`
	LastUpdateDate string    `json:"last_update_date"`
	PreviousDate   string    `json:"previous_date,omitempty"`
	DetectedAt     time.Time `json:"detected_at"`
}

// NewEvent constructs an Event with a fresh ID, stamped with the current UTC time.
// Sinks deliver at least once, so subscribers dedupe on ID.
func NewEvent(targetID, targetName, kind, value, lastUpdate, previous string) Event {
	return Event{
		ID:             uuid.NewString(),
		TargetID:       targetID,
		TargetName:     targetName,
		Kind:           kind,
		Value:          value,
		LastUpdateDate: lastUpdate,
		PreviousDate:   previous,
		DetectedAt:     time.Now().UTC(),
	}
}

// attributes are attached to queue/topic messages for subscriber-side filtering.
// Empty values are left out.
func (e Event) attributes() map[string]string {
	attrs := make(map[string]string, 3)
	for k, v := range map[string]string{
		"event_id":  e.ID,
		"target_id": e.TargetID,
		"kind":      e.Kind,
	} {
		if v != "" {
			attrs[k] = v
		}
	}
	return attrs
}
