// Package postgres implementa el document store sobre PostgreSQL: cada
// documento es una fila (collection, id, data JSONB) de una única tabla.
// El esquema se aplica al arrancar; los errores del driver salen
// clasificados con los centinelas de domain.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS documents (
	collection  text NOT NULL,
	id          text NOT NULL,
	data        jsonb NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// DocumentStore implementación de docstore.Store sobre pgxpool.
type DocumentStore struct {
	pool *pgxpool.Pool
}

var _ docstore.Store = (*DocumentStore)(nil)

// NewDocumentStore aplica el DDL y devuelve el store listo.
func NewDocumentStore(ctx context.Context, pool *pgxpool.Pool) (*DocumentStore, error) {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return nil, fmt.Errorf("aplicar esquema documents: %w", classify(err))
	}
	return &DocumentStore{pool: pool}, nil
}

// Collection devuelve el acceso a la colección indicada.
func (s *DocumentStore) Collection(name string) docstore.Collection {
	return &pgCollection{pool: s.pool, name: name}
}

// Close cierra el pool subyacente.
func (s *DocumentStore) Close() { s.pool.Close() }

type pgCollection struct {
	pool *pgxpool.Pool
	name string
}

func (c *pgCollection) List(ctx context.Context) ([]docstore.Record, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT data FROM documents WHERE collection = $1 ORDER BY id`, c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, classify(err))
	}
	defer rows.Close()

	var out []docstore.Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.name, classify(err))
		}
		rec, err := decodeJSONB(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, classify(err))
	}
	return out, nil
}

func (c *pgCollection) Get(ctx context.Context, id string) (docstore.Record, error) {
	var raw []byte
	err := c.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`, c.name, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", c.name, id, classify(err))
	}
	return decodeJSONB(raw)
}

func (c *pgCollection) Create(ctx context.Context, rec docstore.Record) (docstore.Record, error) {
	stored := rec.Clone()
	stored[docstore.IDField] = uuid.New().String()
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("codificar %s: %w", c.name, domain.ErrMalformed)
	}
	_, err = c.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		c.name, stored.ID(), raw)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, classify(err))
	}
	return stored, nil
}

func (c *pgCollection) Update(ctx context.Context, id string, rec docstore.Record) error {
	stored := rec.Clone()
	stored[docstore.IDField] = id
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.name, domain.ErrMalformed)
	}
	cmd, err := c.pool.Exec(ctx,
		`UPDATE documents SET data = $3 WHERE collection = $1 AND id = $2`,
		c.name, id, raw)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", c.name, id, classify(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *pgCollection) Delete(ctx context.Context, id string) error {
	cmd, err := c.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, c.name, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, id, classify(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func decodeJSONB(raw []byte) (docstore.Record, error) {
	var rec docstore.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("documento corrupto: %w", domain.ErrMalformed)
	}
	return rec, nil
}

// classify traduce errores de pgx a los centinelas del dominio para que los
// callers nunca dependan de formas de error específicas del driver.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501": // insufficient_privilege
			return domain.ErrPermissionDenied
		case "23505": // unique_violation
			return domain.ErrDuplicate
		case "22P02", "22023": // invalid_text_representation, invalid_parameter_value
			return domain.ErrMalformed
		}
		if pgErr.Code[:2] == "53" || pgErr.Code[:2] == "57" || pgErr.Code[:2] == "08" {
			// recursos insuficientes, intervención del operador, fallo de conexión
			return domain.ErrUnavailable
		}
		return domain.ErrStoreUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrUnavailable
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return domain.ErrUnavailable
	}
	return domain.ErrStoreUnknown
}
