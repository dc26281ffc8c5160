package entity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("entity not found")
	ErrEmptyName = errors.New("entity name normalizes to nothing")

	// ErrDuplicateKey reports that an insert found the normalized key
	// already taken. Stores signal it without raising a database error,
	// because resolution runs inside a block transaction and Postgres
	// aborts the whole transaction on any statement error.
	ErrDuplicateKey = errors.New("normalized key already taken")
)

//go:generate mockgen -source=resolver.go -destination=resolver_mock.go -package=entity
type Store interface {
	Find(ctx context.Context, q Querier, kind Kind, key string) (Ref, error)
	Insert(ctx context.Context, q Querier, kind Kind, name, key string, createdBy uuid.UUID) (Ref, error)
}

// Resolver is a find-or-create for Company/Employee references keyed by
// normalized name. Correctness rests on the UNIQUE constraint over the
// normalized key, not on in-process locking: when two jobs race on the
// same new name, one insert wins and the loser retries the lookup.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// resolveAttempts bounds the find/insert/re-find loop. Two attempts cover
// the lost-race case; the third absorbs a concurrent delete between the
// failed insert and the re-find.
const resolveAttempts = 3

func (r *Resolver) Resolve(ctx context.Context, q Querier, kind Kind, name string, createdBy uuid.UUID) (Ref, error) {
	key := NormalizeKey(name)
	if key == "" {
		return Ref{}, fmt.Errorf("resolving %s %q: %w", kind, name, ErrEmptyName)
	}

	var lastErr error

	for attempt := 0; attempt < resolveAttempts; attempt++ {
		ref, err := r.store.Find(ctx, q, kind, key)
		if err == nil {
			return ref, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return Ref{}, fmt.Errorf("looking up %s %q: %w", kind, key, err)
		}

		ref, err = r.store.Insert(ctx, q, kind, name, key, createdBy)
		if err == nil {
			return ref, nil
		}

		if !errors.Is(err, ErrDuplicateKey) && !isUniqueViolation(err) {
			return Ref{}, fmt.Errorf("creating %s %q: %w", kind, name, err)
		}

		// Lost the race; another writer holds this key now.
		lastErr = err
	}

	return Ref{}, fmt.Errorf("resolving %s %q: retries exhausted: %w", kind, name, lastErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
