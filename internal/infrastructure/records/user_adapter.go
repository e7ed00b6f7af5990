package records

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
)

var _ repository.UserRepository = (*UserAdapter)(nil)

// UserAdapter implementa UserRepository sobre la colección "users".
// La búsqueda por email recorre la colección: el volumen de cuentas de una
// farmacia no justifica un índice secundario en el store.
type UserAdapter struct {
	base
}

// NewUserAdapter construye el adaptador. m puede ser nil (tests).
func NewUserAdapter(store docstore.Store, m *metrics.Metrics) *UserAdapter {
	return &UserAdapter{base{col: store.Collection(docstore.ColUsers), name: docstore.ColUsers, m: m}}
}

// GetByID devuelve la cuenta con ese id o domain.ErrNotFound.
func (a *UserAdapter) GetByID(ctx context.Context, id string) (user *entity.User, err error) {
	defer func() { a.observe("get", err) }()
	rec, err := a.col.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeUser(rec)
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}

// GetByEmail devuelve la cuenta con ese email o domain.ErrNotFound.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	defer func() { a.observe("list", err) }()
	recs, err := a.col.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if getString(rec, "email") == email {
			decoded, derr := decodeUser(rec)
			if derr != nil {
				return nil, derr
			}
			return &decoded, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create persiste la cuenta y escribe en ella el id asignado.
func (a *UserAdapter) Create(ctx context.Context, user *entity.User) (err error) {
	defer func() { a.observe("create", err) }()
	stored, err := a.col.Create(ctx, encodeUser(*user))
	if err != nil {
		return err
	}
	user.ID = stored.ID()
	return nil
}

// Update reemplaza el documento completo salvo el id.
func (a *UserAdapter) Update(ctx context.Context, user *entity.User) (err error) {
	defer func() { a.observe("update", err) }()
	return a.col.Update(ctx, user.ID, encodeUser(*user))
}

func encodeUser(user entity.User) docstore.Record {
	rec := docstore.Record{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"displayName":  user.DisplayName,
		"role":         string(user.Role),
		"createdAt":    encodeTime(user.CreatedAt),
		"updatedAt":    encodeTime(user.UpdatedAt),
	}
	putOptional(rec, "photoURL", user.PhotoURL)
	return rec
}

func decodeUser(rec docstore.Record) (entity.User, error) {
	role := entity.UserRole(getString(rec, "role"))
	if !role.Valid() {
		return entity.User{}, fmt.Errorf("role %q fuera del conjunto: %w", role, domain.ErrMalformed)
	}
	createdAt, err := decodeTime(rec["createdAt"])
	if err != nil {
		return entity.User{}, err
	}
	updatedAt, err := decodeTime(rec["updatedAt"])
	if err != nil {
		return entity.User{}, err
	}
	return entity.User{
		ID:           rec.ID(),
		Email:        getString(rec, "email"),
		PasswordHash: getString(rec, "passwordHash"),
		DisplayName:  getString(rec, "displayName"),
		PhotoURL:     getString(rec, "photoURL"),
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
