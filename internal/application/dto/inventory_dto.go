package dto

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Category       string `json:"category" validate:"required,min=2"`
	Quantity       int    `json:"quantity" validate:"min=0"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
	Status         string `json:"status" validate:"required,oneof='In Stock' 'Low Stock' 'Out of Stock'"`
	Barcode        string `json:"barcode,omitempty"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/:id.
type UpdateInventoryItemRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Category       string `json:"category" validate:"required,min=2"`
	Quantity       int    `json:"quantity" validate:"min=0"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
	Status         string `json:"status" validate:"required"`
	Barcode        string `json:"barcode,omitempty"`
}

// InventoryItemResponse salida de un ítem de inventario. La fecha viaja
// como día calendario en formato YYYY-MM-DD.
type InventoryItemResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expirationDate"`
	Status         string `json:"status"`
	StatusVariant  string `json:"statusVariant"`
	Barcode        string `json:"barcode,omitempty"`
}

// ScanResponse salida de POST /api/inventory/scan.
type ScanResponse struct {
	Outcome string `json:"outcome"`
	Barcode string `json:"barcode,omitempty"`
}
