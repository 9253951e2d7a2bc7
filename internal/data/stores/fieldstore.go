package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/datepicker/internal/core/logging"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/data/db"
)

// Field is a stored host field value.
type Field struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldStore persists named host field values in SQLite.
type FieldStore struct {
	db  *db.DB
	log zerolog.Logger
}

// NewFieldStore creates a new SQLite-backed field store.
func NewFieldStore(db *db.DB) *FieldStore {
	return &FieldStore{db: db, log: logging.Component("fieldstore")}
}

// Get returns a field by name. Returns ErrNotFound if not found.
func (s *FieldStore) Get(ctx context.Context, name string) (Field, error) {
	var (
		f         = Field{Name: name}
		updatedAt int64
	)
	err := s.db.Conn().QueryRowContext(ctx,
		"SELECT value, updated_at FROM host_fields WHERE name = ?", name,
	).Scan(&f.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Field{}, ErrNotFound
	}
	if err != nil {
		return Field{}, fmt.Errorf("failed to get field %q: %w", name, err)
	}

	f.UpdatedAt = time.Unix(0, updatedAt)
	return f, nil
}

// Value returns the stored text of a field, or "" when it was never set.
func (s *FieldStore) Value(ctx context.Context, name string) (string, error) {
	f, err := s.Get(ctx, name)
	if IsNotFoundError(err) {
		return "", nil
	}
	return f.Value, err
}

// Set creates or updates a field.
func (s *FieldStore) Set(ctx context.Context, name, value string) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO host_fields (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, name, value, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to set field %q: %w", name, err)
	}

	s.log.Debug().Ctx(ctx).Str("name", name).Str("value", value).Msg("field stored")
	return nil
}

// Delete removes a field. Returns ErrNotFound if not found.
func (s *FieldStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.Conn().ExecContext(ctx, "DELETE FROM host_fields WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete field %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete field %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all fields ordered by name.
func (s *FieldStore) List(ctx context.Context) ([]Field, error) {
	rows, err := s.db.Conn().QueryContext(ctx, "SELECT name, value, updated_at FROM host_fields ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fields []Field
	for rows.Next() {
		var (
			f         Field
			updatedAt int64
		)
		if err := rows.Scan(&f.Name, &f.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan field: %w", err)
		}
		f.UpdatedAt = time.Unix(0, updatedAt)
		fields = append(fields, f)
	}

	return fields, rows.Err()
}

// Import stores every name/value pair in a single transaction.
func (s *FieldStore) Import(ctx context.Context, values map[string]string) error {
	now := time.Now().UnixNano()
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for name, value := range values {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO host_fields (name, value, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
			`, name, value, now)
			if err != nil {
				return fmt.Errorf("failed to import field %q: %w", name, err)
			}
		}
		return nil
	})
}

// Host binds a stored field to a picker dialog. The value is read once
// here; Set writes through to the database.
func (s *FieldStore) Host(ctx context.Context, name string) (*FieldHost, error) {
	value, err := s.Value(ctx, name)
	if err != nil {
		return nil, err
	}
	return &FieldHost{ctx: ctx, store: s, name: name, value: value}, nil
}

// FieldHost is a selection.HostField backed by a FieldStore row.
type FieldHost struct {
	ctx   context.Context
	store *FieldStore
	name  string
	value string
	err   error
}

var _ selection.HostField = (*FieldHost)(nil)

func (h *FieldHost) Get() string { return h.value }

// Set updates the cached value and persists it. A failed write is kept
// for Err and logged.
func (h *FieldHost) Set(v string) {
	h.value = v
	if err := h.store.Set(h.ctx, h.name, v); err != nil {
		h.err = err
		h.store.log.Error().Ctx(h.ctx).Err(err).Str("name", h.name).Msg("write host field")
	}
}

// Err returns the last write error, if any.
func (h *FieldHost) Err() error { return h.err }
