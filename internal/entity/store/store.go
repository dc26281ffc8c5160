package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/taberna-labs/daybook/internal/entity"
)

// Store persists reference entities. Every method takes a Querier so that
// resolution can happen on the importer's block transaction.
type Store struct{}

func New() *Store {
	return &Store{}
}

func tableFor(kind entity.Kind) (string, error) {
	switch kind {
	case entity.KindCompany:
		return "companies", nil
	case entity.KindEmployee:
		return "employees", nil
	}

	return "", fmt.Errorf("unknown entity kind: %s", kind)
}

func (s *Store) Find(ctx context.Context, q entity.Querier, kind entity.Kind, key string) (entity.Ref, error) {
	table, err := tableFor(kind)
	if err != nil {
		return entity.Ref{}, err
	}

	query := `SELECT id, name, normalized_key FROM ` + table + ` WHERE normalized_key = $1`

	ref := entity.Ref{Kind: kind}
	if err := q.QueryRowContext(ctx, query, key).Scan(&ref.ID, &ref.Name, &ref.Key); err != nil {
		if err == sql.ErrNoRows {
			return entity.Ref{}, entity.ErrNotFound
		}

		return entity.Ref{}, fmt.Errorf("finding %s: %w", kind, err)
	}

	return ref, nil
}

func (s *Store) Insert(ctx context.Context, q entity.Querier, kind entity.Kind, name, key string, createdBy uuid.UUID) (entity.Ref, error) {
	table, err := tableFor(kind)
	if err != nil {
		return entity.Ref{}, err
	}

	// ON CONFLICT DO NOTHING, not a plain insert: resolution runs inside
	// the importer's block transaction, and a raised unique violation
	// would abort that whole transaction in Postgres (every later
	// statement fails with 25P02). A lost race must come back as an
	// empty result, never as a statement error.
	query := `
		INSERT INTO ` + table + ` (name, normalized_key, created_by_upload)
		VALUES ($1, $2, $3)
		ON CONFLICT (normalized_key) DO NOTHING
		RETURNING id
	`

	ref := entity.Ref{Kind: kind, Name: name, Key: key}

	err = q.QueryRowContext(ctx, query, name, key, createdBy).Scan(&ref.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return entity.Ref{}, entity.ErrDuplicateKey
		}

		return entity.Ref{}, fmt.Errorf("creating %s: %w", kind, err)
	}

	return ref, nil
}
