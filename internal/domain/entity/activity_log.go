package entity

import "time"

// ActivityLog entrada del registro de actividad. Colección de solo-agregar:
// las generan las demás operaciones del sistema y aquí solo se listan y
// exportan, nunca se editan.
type ActivityLog struct {
	ID        string
	User      string // nombre visible de quien ejecutó la acción
	Action    string
	Timestamp time.Time
	Details   map[string]any // opcional, mapa abierto clave-valor
}
