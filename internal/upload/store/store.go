package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/taberna-labs/daybook/internal/upload"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, u *upload.Upload) error {
	query := `
		INSERT INTO uploads (filename, source_path, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, u.Filename, u.SourcePath, u.Status).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating upload: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*upload.Upload, error) {
	query := `
		SELECT id, filename, source_path, status, processed_rows, total_rows,
		       errors, audit_path, created_at, updated_at
		FROM uploads WHERE id = $1
	`

	var (
		u         upload.Upload
		statusStr string
		errsJSON  []byte
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Filename, &u.SourcePath, &statusStr, &u.ProcessedRows,
		&u.TotalRows, &errsJSON, &u.AuditPath, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, upload.ErrNotFound
		}

		return nil, fmt.Errorf("getting upload: %w", err)
	}

	u.Status = upload.Status(statusStr)

	if err := json.Unmarshal(errsJSON, &u.Errors); err != nil {
		return nil, fmt.Errorf("decoding upload errors: %w", err)
	}

	return &u, nil
}

func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, status upload.Status) error {
	return s.exec(ctx, `UPDATE uploads SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
}

func (s *Store) SetTotals(ctx context.Context, id uuid.UUID, total int) error {
	return s.exec(ctx, `UPDATE uploads SET total_rows = $2, updated_at = NOW() WHERE id = $1`, id, total)
}

func (s *Store) Advance(ctx context.Context, id uuid.UUID, delta int) error {
	return s.exec(ctx, `UPDATE uploads SET processed_rows = processed_rows + $2, updated_at = NOW() WHERE id = $1`, id, delta)
}

func (s *Store) AppendError(ctx context.Context, id uuid.UUID, msg string) error {
	query := `
		UPDATE uploads
		SET errors = errors || to_jsonb($2::text), updated_at = NOW()
		WHERE id = $1
	`

	return s.exec(ctx, query, id, msg)
}

func (s *Store) SetAuditPath(ctx context.Context, id uuid.UUID, path string) error {
	return s.exec(ctx, `UPDATE uploads SET audit_path = $2, updated_at = NOW() WHERE id = $1`, id, path)
}

func (s *Store) ResetProgress(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE uploads
		SET processed_rows = 0, total_rows = 0, errors = '[]'::jsonb, updated_at = NOW()
		WHERE id = $1
	`

	return s.exec(ctx, query, id)
}

func (s *Store) exec(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("updating upload: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return upload.ErrNotFound
	}

	return nil
}
