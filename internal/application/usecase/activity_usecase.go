package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/collate"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/tableview"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// ActivityFileName nombre del archivo de exportación.
const ActivityFileName = "activity_logs.csv"

// ActivityUseCase bitácora de actividad: registro, consulta y export.
type ActivityUseCase struct {
	repo     repository.ActivityRepository
	log      *logger.Logger
	schema   tableview.Schema[entity.ActivityLog]
	collator *collate.Collator
	now      func() time.Time
}

// NewActivityUseCase construye el caso de uso de bitácora.
func NewActivityUseCase(repo repository.ActivityRepository, log *logger.Logger, locale string) *ActivityUseCase {
	return &ActivityUseCase{
		repo:     repo,
		log:      log.Component("activity"),
		schema:   activitySchema(),
		collator: tableview.NewCollator(locale),
		now:      time.Now,
	}
}

func activitySchema() tableview.Schema[entity.ActivityLog] {
	return tableview.Schema[entity.ActivityLog]{
		ID: func(l entity.ActivityLog) string { return l.ID },
		Columns: []tableview.Column[entity.ActivityLog]{
			{Key: "user", Kind: tableview.KindString, Searchable: true,
				String: func(l entity.ActivityLog) (string, bool) { return l.User, true }},
			{Key: "action", Kind: tableview.KindString, Searchable: true,
				String: func(l entity.ActivityLog) (string, bool) { return l.Action, true }},
			{Key: "timestamp", Kind: tableview.KindDate,
				Date: func(l entity.ActivityLog) (time.Time, bool) { return l.Timestamp, !l.Timestamp.IsZero() }},
		},
		DefaultSort: "timestamp",
		DefaultDir:  tableview.Desc,
	}
}

// Record escribe una entrada de bitácora. Es best effort: una falla se
// loguea y no tumba la operación que la originó.
func (uc *ActivityUseCase) Record(ctx context.Context, user, action string, details map[string]any) {
	entry := &entity.ActivityLog{
		User:      user,
		Action:    action,
		Timestamp: uc.now().UTC(),
		Details:   details,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la actividad")
	}
}

// List devuelve la bitácora filtrada y ordenada. El parámetro date
// (YYYY-MM-DD) restringe a las entradas de ese día calendario en UTC.
func (uc *ActivityUseCase) List(ctx context.Context, in dto.ListRequest, date string) ([]dto.ActivityLogResponse, error) {
	logs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if date != "" {
		if day, perr := time.Parse("2006-01-02", date); perr == nil {
			filtered := make([]entity.ActivityLog, 0, len(logs))
			for _, l := range logs {
				ts := l.Timestamp.UTC()
				if ts.Year() == day.Year() && ts.YearDay() == day.YearDay() {
					filtered = append(filtered, l)
				}
			}
			logs = filtered
		}
	}
	rows := tableview.Apply(uc.schema, uc.collator, logs, in.Query, in.Sort, tableview.ParseDirection(in.Dir))
	out := make([]dto.ActivityLogResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toActivityResponse(l))
	}
	return out, nil
}

// ExportCSV serializa la bitácora completa en CSV UTF-8: fila de
// encabezado con los nombres de campo, todos los valores entre
// comillas con escape de comilla doblada, detalles como JSON embebido
// y ausencias como cadena vacía.
func (uc *ActivityUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	logs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	tableview.Sort(uc.schema, uc.collator, logs, "timestamp", tableview.Desc)

	var b strings.Builder
	writeCSVRow(&b, []string{"id", "user", "action", "timestamp", "details"})
	for _, l := range logs {
		details := ""
		if len(l.Details) > 0 {
			raw, merr := json.Marshal(l.Details)
			if merr != nil {
				return nil, merr
			}
			details = string(raw)
		}
		writeCSVRow(&b, []string{
			l.ID,
			l.User,
			l.Action,
			l.Timestamp.UTC().Format(time.RFC3339),
			details,
		})
	}
	return []byte(b.String()), nil
}

// writeCSVRow escribe una fila con cada valor entre comillas, doblando
// las comillas internas.
func writeCSVRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}

func toActivityResponse(l entity.ActivityLog) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:        l.ID,
		User:      l.User,
		Action:    l.Action,
		Timestamp: l.Timestamp,
		Details:   l.Details,
	}
}
