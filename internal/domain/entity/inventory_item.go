package entity

import "time"

// ItemStatus estado de stock de un ítem de inventario. Lo fija el usuario
// (no se deriva de la cantidad). Variante cerrada: usar siempre switch
// exhaustivo al consumirla.
type ItemStatus string

const (
	StatusInStock    ItemStatus = "In Stock"
	StatusLowStock   ItemStatus = "Low Stock"
	StatusOutOfStock ItemStatus = "Out of Stock"
)

// Valid indica si el valor pertenece al conjunto cerrado de estados.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// BadgeVariant devuelve la variante visual asociada al estado, para clientes
// que pintan badges. Switch exhaustivo: agregar un estado nuevo obliga a
// decidir aquí su variante.
func (s ItemStatus) BadgeVariant() string {
	switch s {
	case StatusInStock:
		return "default"
	case StatusLowStock:
		return "secondary"
	case StatusOutOfStock:
		return "destructive"
	}
	return "outline"
}

// InventoryItem representa un producto del inventario de la farmacia.
// El ID lo asigna el record store; Barcode es opcional (vacío = no asignado).
type InventoryItem struct {
	ID             string
	Name           string
	Category       string
	Quantity       int // invariante: >= 0
	ExpirationDate time.Time // precisión de día calendario
	Status         ItemStatus
	Barcode        string // opcional
}
