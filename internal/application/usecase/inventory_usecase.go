package usecase

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/application/tableview"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InventoryUseCase casos de uso CRUD del inventario de la farmacia.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	activity *ActivityUseCase
	scanner  form.Scanner
	schema   tableview.Schema[entity.InventoryItem]
	collator *collate.Collator
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, activity *ActivityUseCase, scanner form.Scanner, locale string) *InventoryUseCase {
	return &InventoryUseCase{
		repo:     repo,
		activity: activity,
		scanner:  scanner,
		schema:   inventorySchema(),
		collator: tableview.NewCollator(locale),
	}
}

// inventorySchema columnas del listado de inventario. Para la búsqueda
// cuentan también la cantidad y la fecha como texto, igual que se ven
// en pantalla.
func inventorySchema() tableview.Schema[entity.InventoryItem] {
	return tableview.Schema[entity.InventoryItem]{
		ID: func(it entity.InventoryItem) string { return it.ID },
		Columns: []tableview.Column[entity.InventoryItem]{
			{Key: "name", Kind: tableview.KindString, Searchable: true,
				String: func(it entity.InventoryItem) (string, bool) { return it.Name, true }},
			{Key: "category", Kind: tableview.KindString, Searchable: true,
				String: func(it entity.InventoryItem) (string, bool) { return it.Category, true }},
			{Key: "quantity", Kind: tableview.KindNumber, Searchable: true,
				Number: func(it entity.InventoryItem) (float64, bool) { return float64(it.Quantity), true },
				String: func(it entity.InventoryItem) (string, bool) { return strconv.Itoa(it.Quantity), true }},
			{Key: "expirationDate", Kind: tableview.KindDate, Searchable: true,
				Date: func(it entity.InventoryItem) (time.Time, bool) {
					return it.ExpirationDate, !it.ExpirationDate.IsZero()
				},
				String: func(it entity.InventoryItem) (string, bool) {
					if it.ExpirationDate.IsZero() {
						return "", false
					}
					return it.ExpirationDate.Format(dateLayout), true
				}},
			{Key: "status", Kind: tableview.KindString, Searchable: true,
				String: func(it entity.InventoryItem) (string, bool) { return string(it.Status), true }},
			{Key: "barcode", Kind: tableview.KindString, Searchable: true,
				String: func(it entity.InventoryItem) (string, bool) { return it.Barcode, it.Barcode != "" }},
		},
		DefaultSort: "expirationDate",
		DefaultDir:  tableview.Asc,
	}
}

// List devuelve el inventario filtrado por q y ordenado por sort/dir.
// Sin sort explícito ordena por fecha de vencimiento ascendente.
func (uc *InventoryUseCase) List(ctx context.Context, in dto.ListRequest) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := tableview.Apply(uc.schema, uc.collator, items, in.Query, in.Sort, tableview.ParseDirection(in.Dir))
	out := make([]dto.InventoryItemResponse, 0, len(rows))
	for _, it := range rows {
		out = append(out, toInventoryResponse(it))
	}
	return out, nil
}

// GetByID obtiene un ítem por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toInventoryResponse(*item)
	return &resp, nil
}

// Create crea un ítem nuevo a través del ciclo del formulario: con la
// validación fallida el store ni se toca y el formulario sigue editable.
func (uc *InventoryUseCase) Create(ctx context.Context, actor string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item := &entity.InventoryItem{}
	f := form.New(form.InventoryRules(), inventoryValues(in.Name, in.Category, in.Quantity, in.ExpirationDate, in.Status))
	err := f.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		expiration, err := time.Parse(dateLayout, in.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		*item = entity.InventoryItem{
			Name:           in.Name,
			Category:       in.Category,
			Quantity:       in.Quantity,
			ExpirationDate: expiration,
			Status:         entity.ItemStatus(in.Status),
			Barcode:        in.Barcode,
		}
		return uc.repo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Ítem de inventario creado", map[string]any{
		"itemId": item.ID, "name": item.Name,
	})
	resp := toInventoryResponse(*item)
	return &resp, nil
}

// Update reemplaza el ítem completo, también vía formulario.
func (uc *InventoryUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	var current *entity.InventoryItem
	f := form.New(form.InventoryRules(), inventoryValues(in.Name, in.Category, in.Quantity, in.ExpirationDate, in.Status))
	err := f.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		var err error
		current, err = uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		expiration, err := time.Parse(dateLayout, in.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		current.Name = in.Name
		current.Category = in.Category
		current.Quantity = in.Quantity
		current.ExpirationDate = expiration
		current.Status = entity.ItemStatus(in.Status)
		current.Barcode = in.Barcode
		return uc.repo.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Ítem de inventario actualizado", map[string]any{
		"itemId": current.ID, "name": current.Name,
	})
	resp := toInventoryResponse(*current)
	return &resp, nil
}

// Delete elimina un ítem. Sin confirmación explícita no borra nada.
func (uc *InventoryUseCase) Delete(ctx context.Context, actor, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmRequired
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.activity.Record(ctx, actor, "Ítem de inventario eliminado", map[string]any{
		"itemId": id, "name": item.Name,
	})
	return nil
}

// Scan pide un código al escáner. Denegado o sin hardware, el caller
// deja el campo editable a mano.
func (uc *InventoryUseCase) Scan(ctx context.Context) dto.ScanResponse {
	code, outcome := uc.scanner.RequestScan(ctx)
	return dto.ScanResponse{Outcome: outcome.String(), Barcode: code}
}

func inventoryValues(name, category string, quantity int, expirationDate, status string) form.Values {
	return form.Values{
		"name":           name,
		"category":       category,
		"quantity":       strconv.Itoa(quantity),
		"expirationDate": expirationDate,
		"status":         status,
	}
}

func toInventoryResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Category:       it.Category,
		Quantity:       it.Quantity,
		ExpirationDate: it.ExpirationDate.Format(dateLayout),
		Status:         string(it.Status),
		StatusVariant:  it.Status.BadgeVariant(),
		Barcode:        it.Barcode,
	}
}
