package records

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
)

var _ repository.EmployeeRepository = (*EmployeeAdapter)(nil)

// EmployeeAdapter implementa EmployeeRepository sobre la colección "employees".
type EmployeeAdapter struct {
	base
}

// NewEmployeeAdapter construye el adaptador. m puede ser nil (tests).
func NewEmployeeAdapter(store docstore.Store, m *metrics.Metrics) *EmployeeAdapter {
	return &EmployeeAdapter{base{col: store.Collection(docstore.ColEmployees), name: docstore.ColEmployees, m: m}}
}

// List devuelve el directorio completo.
func (a *EmployeeAdapter) List(ctx context.Context) (emps []entity.Employee, err error) {
	defer func() { a.observe("list", err) }()
	recs, err := a.col.List(ctx)
	if err != nil {
		return nil, err
	}
	emps = make([]entity.Employee, 0, len(recs))
	for _, rec := range recs {
		emps = append(emps, entity.Employee{
			ID:        rec.ID(),
			Name:      getString(rec, "name"),
			Role:      getString(rec, "role"),
			Email:     getString(rec, "email"),
			AvatarURL: getString(rec, "avatarUrl"),
		})
	}
	return emps, nil
}

// Create persiste el empleado y escribe en él el id asignado.
func (a *EmployeeAdapter) Create(ctx context.Context, emp *entity.Employee) (err error) {
	defer func() { a.observe("create", err) }()
	rec := docstore.Record{
		"name":  emp.Name,
		"role":  emp.Role,
		"email": emp.Email,
	}
	putOptional(rec, "avatarUrl", emp.AvatarURL)
	stored, err := a.col.Create(ctx, rec)
	if err != nil {
		return err
	}
	emp.ID = stored.ID()
	return nil
}
