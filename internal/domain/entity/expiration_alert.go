package entity

import "time"

// ExpirationAlert registro derivado: una alerta por ítem de inventario,
// recalculada bajo demanda. Nunca se persiste; el ID es el del ítem origen.
type ExpirationAlert struct {
	ID             string
	ItemName       string
	ExpirationDate time.Time
	DaysToExpiry   int // con signo: negativo si ya venció
}
