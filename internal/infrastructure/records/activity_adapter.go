package records

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
)

var _ repository.ActivityRepository = (*ActivityAdapter)(nil)

// ActivityAdapter implementa ActivityRepository sobre la colección
// "activityLogs" (solo-agregar).
type ActivityAdapter struct {
	base
}

// NewActivityAdapter construye el adaptador. m puede ser nil (tests).
func NewActivityAdapter(store docstore.Store, m *metrics.Metrics) *ActivityAdapter {
	return &ActivityAdapter{base{col: store.Collection(docstore.ColActivity), name: docstore.ColActivity, m: m}}
}

// List devuelve todas las entradas del registro.
func (a *ActivityAdapter) List(ctx context.Context) (logs []entity.ActivityLog, err error) {
	defer func() { a.observe("list", err) }()
	recs, err := a.col.List(ctx)
	if err != nil {
		return nil, err
	}
	logs = make([]entity.ActivityLog, 0, len(recs))
	for _, rec := range recs {
		ts, derr := decodeTime(rec["timestamp"])
		if derr != nil {
			return nil, derr
		}
		details, _ := rec["details"].(map[string]any)
		logs = append(logs, entity.ActivityLog{
			ID:        rec.ID(),
			User:      getString(rec, "user"),
			Action:    getString(rec, "action"),
			Timestamp: ts,
			Details:   details,
		})
	}
	return logs, nil
}

// Create agrega una entrada y escribe en ella el id asignado.
func (a *ActivityAdapter) Create(ctx context.Context, log *entity.ActivityLog) (err error) {
	defer func() { a.observe("create", err) }()
	rec := docstore.Record{
		"user":      log.User,
		"action":    log.Action,
		"timestamp": encodeTime(log.Timestamp),
	}
	if len(log.Details) > 0 {
		rec["details"] = log.Details
	}
	stored, err := a.col.Create(ctx, rec)
	if err != nil {
		return err
	}
	log.ID = stored.ID()
	return nil
}
