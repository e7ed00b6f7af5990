package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee.
// Solo alta y listado: el directorio es de solo-agregar por decisión de
// producto, así que el puerto no expone Update ni Delete.
type EmployeeRepository interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Create(ctx context.Context, emp *entity.Employee) error
}
