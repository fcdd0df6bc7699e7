package models

import "github.com/maestro-works/maestro/ent"

// CreateEventRequest contains fields for creating a catchup event
type CreateEventRequest struct {
	ExecutionID string         `json:"execution_id"`
	Channel     string         `json:"channel"`
	Payload     map[string]any `json:"payload"`
}

// EventsResponse contains the list of events since a given ID
type EventsResponse struct {
	Events []*ent.Event `json:"events"`
}
