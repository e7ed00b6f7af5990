package dto

import "time"

// ActivityLogResponse salida de una entrada de bitácora.
type ActivityLogResponse struct {
	ID        string         `json:"id"`
	User      string         `json:"user"`
	Action    string         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}
