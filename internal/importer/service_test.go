package importer_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taberna-labs/daybook/internal/entity"
	"github.com/taberna-labs/daybook/internal/importer"
	"github.com/taberna-labs/daybook/internal/importer/daybook"
	"github.com/taberna-labs/daybook/internal/voucher"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sourceOf(blocks ...*daybook.Block) importer.OpenFunc {
	return func(string) (importer.BlockSource, error) {
		return &sliceSource{blocks: blocks}, nil
	}
}

type sliceSource struct {
	blocks []*daybook.Block
	pos    int
}

func (s *sliceSource) Next() (*daybook.Block, error) {
	if s.pos >= len(s.blocks) {
		return nil, io.EOF
	}

	b := s.blocks[s.pos]
	s.pos++

	return b, nil
}

func (s *sliceSource) Close() error { return nil }

func salesBlock() *daybook.Block {
	gst := int64(18000)
	goods := int64(100000)
	total := int64(11800000)

	return &daybook.Block{
		VoucherNo: "S/001",
		Type:      "Sales",
		Party:     "Acme Traders",
		Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Debit:     &total,
		Lines: []daybook.DetailLine{
			{Description: "Finished Goods", Amount: &goods},
			{Description: "IGST OUTPUT", Amount: &gst},
			{Description: "Rahul Sharma (UK)", Marker: daybook.MarkerCredit},
		},
	}
}

func TestService_Run_PersistsBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)
	tx := voucher.NewMockBlockTx(ctrl)

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().SetTotals(gomock.Any(), id, 1).Return(nil)
	tracker.EXPECT().Advance(gomock.Any(), id, 1).Return(nil)
	tracker.EXPECT().Complete(gomock.Any(), id).Return(nil)

	vouchers.EXPECT().
		ExistsFingerprint(gomock.Any(), importer.Fingerprint("S/001", "2024-04-01")).
		Return(false, nil)
	vouchers.EXPECT().BeginBlock(gomock.Any()).Return(tx, nil)

	tx.EXPECT().Querier().Return(nil).AnyTimes()
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", id).
		Return(entity.Ref{ID: 7, Kind: entity.KindCompany, Name: "Acme Traders", Key: "acmetraders"}, nil)
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindEmployee, "Rahul Sharma (UK)", id).
		Return(entity.Ref{ID: 3, Kind: entity.KindEmployee, Name: "Rahul Sharma (UK)", Key: "rahulsharmauk"}, nil)

	var inserted *voucher.Voucher

	tx.EXPECT().
		InsertVoucher(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *voucher.Voucher) error {
			v.ID = uuid.New()
			inserted = v
			return nil
		})

	var items []*voucher.Item

	tx.EXPECT().
		InsertItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *voucher.Item) error {
			items = append(items, item)
			return nil
		}).
		Times(2)

	tx.EXPECT().
		InsertParticipant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *voucher.Participant) error {
			assert.Equal(t, int64(3), p.EmployeeID)
			assert.Equal(t, "credit", p.Role)
			assert.InDelta(t, 0.9, p.Confidence, 0.001)
			return nil
		})

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger()).
		WithOpen(sourceOf(salesBlock()))

	err := svc.Run(context.Background(), id, "daybook.csv")
	require.NoError(t, err)

	require.NotNil(t, inserted)
	assert.Equal(t, "S/001", inserted.Number)
	assert.Equal(t, int64(11800000), inserted.Amount)
	assert.Equal(t, "INR", inserted.Currency)
	require.NotNil(t, inserted.CompanyID)
	assert.Equal(t, int64(7), *inserted.CompanyID)
	require.NotNil(t, inserted.Date)
	assert.Equal(t, "2024-04-01", inserted.Date.Format(time.DateOnly))

	require.Len(t, items, 2)
	assert.Equal(t, "Finished Goods", items[0].Description)
	assert.Equal(t, int64(100000), items[0].Amount)
	assert.Equal(t, "IGST OUTPUT", items[1].Description)
	assert.Equal(t, int64(18000), items[1].Amount)
}

func TestService_Run_SkipsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().SetTotals(gomock.Any(), id, 1).Return(nil)
	tracker.EXPECT().
		AppendError(gomock.Any(), id, "duplicate voucher S/001 (2024-04-01) skipped").
		Return(nil)
	tracker.EXPECT().Advance(gomock.Any(), id, 1).Return(nil)
	tracker.EXPECT().Complete(gomock.Any(), id).Return(nil)

	vouchers.EXPECT().
		ExistsFingerprint(gomock.Any(), gomock.Any()).
		Return(true, nil)

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger()).
		WithOpen(sourceOf(salesBlock()))

	err := svc.Run(context.Background(), id, "daybook.csv")
	require.NoError(t, err)
}

func TestService_Run_IsolatesBlockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	bad := salesBlock()
	good := salesBlock()
	good.VoucherNo = "S/002"

	badTx := voucher.NewMockBlockTx(ctrl)
	goodTx := voucher.NewMockBlockTx(ctrl)

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().SetTotals(gomock.Any(), id, 2).Return(nil)
	tracker.EXPECT().
		AppendError(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, msg string) error {
			assert.Contains(t, msg, "block 1 (voucher S/001)")
			assert.Contains(t, msg, "insert denied")
			return nil
		})
	tracker.EXPECT().Advance(gomock.Any(), id, 2).Return(nil)
	tracker.EXPECT().Complete(gomock.Any(), id).Return(nil)

	gomock.InOrder(
		vouchers.EXPECT().ExistsFingerprint(gomock.Any(), gomock.Any()).Return(false, nil),
		vouchers.EXPECT().BeginBlock(gomock.Any()).Return(badTx, nil),
		vouchers.EXPECT().ExistsFingerprint(gomock.Any(), gomock.Any()).Return(false, nil),
		vouchers.EXPECT().BeginBlock(gomock.Any()).Return(goodTx, nil),
	)

	badTx.EXPECT().Querier().Return(nil).AnyTimes()
	badTx.EXPECT().InsertVoucher(gomock.Any(), gomock.Any()).Return(errors.New("insert denied"))
	// The failed block must roll back and never commit.
	badTx.EXPECT().Rollback().Return(nil)

	goodTx.EXPECT().Querier().Return(nil).AnyTimes()
	goodTx.EXPECT().InsertVoucher(gomock.Any(), gomock.Any()).Return(nil)
	goodTx.EXPECT().InsertItem(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	goodTx.EXPECT().InsertParticipant(gomock.Any(), gomock.Any()).Return(nil)
	goodTx.EXPECT().Commit().Return(nil)
	goodTx.EXPECT().Rollback().Return(nil).AnyTimes()

	// The bad block fails before any resolution; the good block resolves
	// its party and staff afresh because nothing was promoted to the
	// cache by the rolled-back block.
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", id).
		Return(entity.Ref{ID: 7, Kind: entity.KindCompany, Key: "acmetraders"}, nil)
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindEmployee, "Rahul Sharma (UK)", id).
		Return(entity.Ref{ID: 3, Kind: entity.KindEmployee, Key: "rahulsharmauk"}, nil)

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger()).
		WithOpen(sourceOf(bad, good))

	err := svc.Run(context.Background(), id, "daybook.csv")
	require.NoError(t, err)
}

func TestService_Run_CachesResolvedEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	first := salesBlock()
	second := salesBlock()
	second.VoucherNo = "S/002"

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().SetTotals(gomock.Any(), id, 2).Return(nil)
	tracker.EXPECT().Advance(gomock.Any(), id, 2).Return(nil)
	tracker.EXPECT().Complete(gomock.Any(), id).Return(nil)

	vouchers.EXPECT().ExistsFingerprint(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	tx := voucher.NewMockBlockTx(ctrl)
	vouchers.EXPECT().BeginBlock(gomock.Any()).Return(tx, nil).Times(2)

	tx.EXPECT().Querier().Return(nil).AnyTimes()
	tx.EXPECT().InsertVoucher(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tx.EXPECT().InsertItem(gomock.Any(), gomock.Any()).Return(nil).Times(4)
	tx.EXPECT().InsertParticipant(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tx.EXPECT().Commit().Return(nil).Times(2)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	// Same party and staff in both blocks: one resolution each, the
	// second block hits the committed-entity cache.
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", id).
		Return(entity.Ref{ID: 7, Kind: entity.KindCompany, Key: "acmetraders"}, nil).
		Times(1)
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), entity.KindEmployee, "Rahul Sharma (UK)", id).
		Return(entity.Ref{ID: 3, Kind: entity.KindEmployee, Key: "rahulsharmauk"}, nil).
		Times(1)

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger()).
		WithOpen(sourceOf(first, second))

	err := svc.Run(context.Background(), id, "daybook.csv")
	require.NoError(t, err)
}

func TestService_Run_FailsOnUnreadableSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().
		Fail(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, msg string) error {
			assert.Contains(t, msg, "opening export")
			return nil
		})

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger()).
		WithOpen(func(string) (importer.BlockSource, error) {
			return nil, fmt.Errorf("no such file")
		})

	err := svc.Run(context.Background(), id, "missing.csv")
	require.Error(t, err)
}

func TestService_Run_CheckpointsInBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	var blocks []*daybook.Block
	for i := 0; i < 5; i++ {
		b := salesBlock()
		b.VoucherNo = fmt.Sprintf("S/%03d", i+1)
		blocks = append(blocks, b)
	}

	tracker.EXPECT().Begin(gomock.Any(), id).Return(nil)
	tracker.EXPECT().SetTotals(gomock.Any(), id, 5).Return(nil)
	// Each skipped duplicate records a warning.
	tracker.EXPECT().AppendError(gomock.Any(), id, gomock.Any()).Return(nil).Times(5)
	gomock.InOrder(
		tracker.EXPECT().Advance(gomock.Any(), id, 2).Return(nil),
		tracker.EXPECT().Advance(gomock.Any(), id, 2).Return(nil),
		tracker.EXPECT().Advance(gomock.Any(), id, 1).Return(nil),
	)
	tracker.EXPECT().Complete(gomock.Any(), id).Return(nil)

	vouchers.EXPECT().ExistsFingerprint(gomock.Any(), gomock.Any()).Return(true, nil).Times(5)

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{BatchSize: 2}, discardLogger()).
		WithOpen(sourceOf(blocks...))

	err := svc.Run(context.Background(), id, "daybook.csv")
	require.NoError(t, err)
}

func TestService_Reprocess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	vouchers := importer.NewMockVoucherStore(ctrl)
	resolver := importer.NewMockResolver(ctrl)
	tracker := importer.NewMockTracker(ctrl)

	tracker.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, errors.New("not found"))

	svc := importer.NewService(vouchers, resolver, tracker, importer.Config{}, discardLogger())

	err := svc.Reprocess(context.Background(), id)
	require.Error(t, err)
}
