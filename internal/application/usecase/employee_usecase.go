package usecase

import (
	"context"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/form"
	"github.com/jhoicas/Farmacia-api/internal/application/tableview"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// EmployeeUseCase directorio de empleados: solo alta y listado.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	activity *ActivityUseCase
	schema   tableview.Schema[entity.Employee]
	collator *collate.Collator
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, activity *ActivityUseCase, locale string) *EmployeeUseCase {
	return &EmployeeUseCase{
		repo:     repo,
		activity: activity,
		schema:   employeeSchema(),
		collator: tableview.NewCollator(locale),
	}
}

func employeeSchema() tableview.Schema[entity.Employee] {
	return tableview.Schema[entity.Employee]{
		ID: func(e entity.Employee) string { return e.ID },
		Columns: []tableview.Column[entity.Employee]{
			{Key: "name", Kind: tableview.KindString, Searchable: true,
				String: func(e entity.Employee) (string, bool) { return e.Name, true }},
			{Key: "role", Kind: tableview.KindString, Searchable: true,
				String: func(e entity.Employee) (string, bool) { return e.Role, true }},
			{Key: "email", Kind: tableview.KindString, Searchable: true,
				String: func(e entity.Employee) (string, bool) { return e.Email, true }},
		},
		DefaultSort: "name",
		DefaultDir:  tableview.Asc,
	}
}

// List devuelve el directorio filtrado y ordenado, por nombre si no se
// pide otra cosa.
func (uc *EmployeeUseCase) List(ctx context.Context, in dto.ListRequest) ([]dto.EmployeeResponse, error) {
	emps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := tableview.Apply(uc.schema, uc.collator, emps, in.Query, in.Sort, tableview.ParseDirection(in.Dir))
	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Create agrega un empleado al directorio a través del ciclo del
// formulario.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := &entity.Employee{}
	f := form.New(form.EmployeeRules(), form.Values{"name": in.Name, "role": in.Role, "email": in.Email})
	err := f.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		*emp = entity.Employee{
			Name:      in.Name,
			Role:      in.Role,
			Email:     in.Email,
			AvatarURL: in.AvatarURL,
		}
		return uc.repo.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, actor, "Empleado agregado", map[string]any{
		"employeeId": emp.ID, "name": emp.Name,
	})
	resp := toEmployeeResponse(*emp)
	return &resp, nil
}

func toEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		Email:    e.Email,
		Avatar:   e.AvatarOrInitials(),
		Initials: entity.Initials(e.Name),
	}
}
