package voucher

import (
	"context"

	"github.com/taberna-labs/daybook/internal/entity"
)

//go:generate mockgen -source=tx.go -destination=tx_mock.go -package=voucher

// BlockTx is one voucher block's atomic write scope: the voucher row, its
// items and participants, plus any entity resolution, all commit or roll
// back together. The importer owns the single commit/rollback point.
type BlockTx interface {
	InsertVoucher(ctx context.Context, v *Voucher) error
	InsertItem(ctx context.Context, item *Item) error
	InsertParticipant(ctx context.Context, p *Participant) error

	// Querier exposes the underlying transaction for entity resolution
	// inside the same scope.
	Querier() entity.Querier

	Commit() error
	Rollback() error
}
