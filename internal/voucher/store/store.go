package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/taberna-labs/daybook/internal/entity"
	"github.com/taberna-labs/daybook/internal/voucher"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ExistsFingerprint reports whether a voucher with this fingerprint is
// already stored, making re-import of the same block a no-op.
func (s *Store) ExistsFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM vouchers WHERE fingerprint = $1)`,
		fingerprint,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking fingerprint: %w", err)
	}

	return exists, nil
}

func (s *Store) BeginBlock(ctx context.Context) (voucher.BlockTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning block tx: %w", err)
	}

	return &blockTx{tx: tx}, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	query := `
		SELECT id, number, date, amount, currency, company_id, upload_id,
		       raw_payload, uniquified_payload, fingerprint, created_at
		FROM vouchers WHERE id = $1
	`

	var v voucher.Voucher

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Number, &v.Date, &v.Amount, &v.Currency, &v.CompanyID,
		&v.UploadID, &v.RawPayload, &v.UniquifiedPayload, &v.Fingerprint,
		&v.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, voucher.ErrNotFound
		}

		return nil, fmt.Errorf("getting voucher: %w", err)
	}

	return &v, nil
}

// ListByUpload returns every voucher persisted by one import run, in
// insertion order.
func (s *Store) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]*voucher.Voucher, error) {
	query := `
		SELECT id, number, date, amount, currency, company_id, upload_id,
		       raw_payload, uniquified_payload, fingerprint, created_at
		FROM vouchers WHERE upload_id = $1 ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, uploadID)
	if err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*voucher.Voucher

	for rows.Next() {
		var v voucher.Voucher

		if err := rows.Scan(
			&v.ID, &v.Number, &v.Date, &v.Amount, &v.Currency, &v.CompanyID,
			&v.UploadID, &v.RawPayload, &v.UniquifiedPayload, &v.Fingerprint,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning voucher: %w", err)
		}

		vouchers = append(vouchers, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}

	return vouchers, nil
}

// CountByUpload is used by tests and operators to verify idempotent
// re-import: the count must not change on a second run of the same file.
func (s *Store) CountByUpload(ctx context.Context, uploadID uuid.UUID) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vouchers WHERE upload_id = $1`, uploadID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting vouchers: %w", err)
	}

	return n, nil
}

type blockTx struct {
	tx *sql.Tx
}

func (b *blockTx) Querier() entity.Querier { return b.tx }
func (b *blockTx) Commit() error           { return b.tx.Commit() }
func (b *blockTx) Rollback() error         { return b.tx.Rollback() }

func (b *blockTx) InsertVoucher(ctx context.Context, v *voucher.Voucher) error {
	query := `
		INSERT INTO vouchers (number, date, amount, currency, company_id, upload_id,
		                      raw_payload, uniquified_payload, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := b.tx.QueryRowContext(ctx, query,
		v.Number, v.Date, v.Amount, v.Currency, v.CompanyID, v.UploadID,
		v.RawPayload, v.UniquifiedPayload, v.Fingerprint,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting voucher: %w", err)
	}

	return nil
}

func (b *blockTx) InsertItem(ctx context.Context, item *voucher.Item) error {
	query := `
		INSERT INTO voucher_items (voucher_id, description, quantity, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := b.tx.QueryRowContext(ctx, query,
		item.VoucherID, item.Description, item.Quantity, item.UnitPrice, item.Amount,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("inserting voucher item: %w", err)
	}

	return nil
}

func (b *blockTx) InsertParticipant(ctx context.Context, p *voucher.Participant) error {
	query := `
		INSERT INTO voucher_participants (voucher_id, employee_id, role, confidence)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := b.tx.QueryRowContext(ctx, query,
		p.VoucherID, p.EmployeeID, p.Role, p.Confidence,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("inserting voucher participant: %w", err)
	}

	return nil
}
