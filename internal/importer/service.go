package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/taberna-labs/daybook/internal/entity"
	"github.com/taberna-labs/daybook/internal/importer/classify"
	"github.com/taberna-labs/daybook/internal/importer/daybook"
	"github.com/taberna-labs/daybook/internal/upload"
	"github.com/taberna-labs/daybook/internal/voucher"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

// VoucherStore persists vouchers and hands out per-block transactions.
type VoucherStore interface {
	ExistsFingerprint(ctx context.Context, fingerprint string) (bool, error)
	BeginBlock(ctx context.Context) (voucher.BlockTx, error)
}

// Resolver finds-or-creates a reference entity on the given querier.
type Resolver interface {
	Resolve(ctx context.Context, q entity.Querier, kind entity.Kind, name string, createdBy uuid.UUID) (entity.Ref, error)
}

// Tracker is the job-status ledger the importer writes to. Satisfied by
// *upload.Service.
type Tracker interface {
	Get(ctx context.Context, id uuid.UUID) (*upload.Upload, error)
	Begin(ctx context.Context, id uuid.UUID) error
	SetTotals(ctx context.Context, id uuid.UUID, total int) error
	Advance(ctx context.Context, id uuid.UUID, delta int) error
	AppendError(ctx context.Context, id uuid.UUID, msg string) error
	SetAuditPath(ctx context.Context, id uuid.UUID, path string) error
	Complete(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, msg string) error
}

// BlockSource is a lazy, finite, non-restartable sequence of voucher
// blocks. Satisfied by *daybook.Reader.
type BlockSource interface {
	Next() (*daybook.Block, error)
	Close() error
}

// OpenFunc opens a block source for a stored export path.
type OpenFunc func(path string) (BlockSource, error)

func defaultOpen(path string) (BlockSource, error) {
	return daybook.Open(path)
}

type Config struct {
	// BatchSize is how many blocks are processed between durable
	// progress checkpoints on the upload row.
	BatchSize int
	// AuditDir receives the raw parsed block dump per upload.
	AuditDir string
	// Strict tunes the classifier's ambiguous-token default.
	Strict bool
}

// Service drives one import job: reader → classifier → uniquifier →
// fingerprint → resolver → per-block transaction, with progress and
// errors written to the upload row. Blocks are strictly sequential within
// a job; concurrent jobs are safe because dedupe and entity uniqueness
// are enforced by storage constraints, not in-process state.
type Service struct {
	vouchers VoucherStore
	resolver Resolver
	tracker  Tracker
	open     OpenFunc
	cfg      Config
	logger   *slog.Logger
}

func NewService(vouchers VoucherStore, resolver Resolver, tracker Tracker, cfg Config, logger *slog.Logger) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}

	return &Service{
		vouchers: vouchers,
		resolver: resolver,
		tracker:  tracker,
		open:     defaultOpen,
		cfg:      cfg,
		logger:   logger,
	}
}

// WithOpen overrides how export files are opened, so tests and tooling
// can feed in-memory block sources instead of files on disk.
func (s *Service) WithOpen(open OpenFunc) *Service {
	s.open = open

	return s
}

// Start kicks off the import for an upload in the background. It is
// fire-and-forget: the caller (an HTTP handler) must respond immediately,
// so every failure is reported via job status, never returned.
func (s *Service) Start(id uuid.UUID, path string) {
	go func() {
		ctx := context.Background()

		if err := s.Run(ctx, id, path); err != nil {
			s.logger.Error("import run failed", "upload_id", id, "error", err)
		}
	}()
}

// Reprocess re-runs the pipeline for an already-created upload against
// its stored source path. Safe at any time: already-imported blocks are
// fingerprint no-ops.
func (s *Service) Reprocess(ctx context.Context, id uuid.UUID) error {
	u, err := s.tracker.Get(ctx, id)
	if err != nil {
		return err
	}

	s.Start(u.ID, u.SourcePath)

	return nil
}

// Run executes one import synchronously. Exposed for tests and CLI use;
// Start is the fire-and-forget wrapper.
func (s *Service) Run(ctx context.Context, id uuid.UUID, path string) error {
	if err := s.tracker.Begin(ctx, id); err != nil {
		return fmt.Errorf("marking upload processing: %w", err)
	}

	src, err := s.open(path)
	if err != nil {
		return s.fail(ctx, id, fmt.Sprintf("opening export: %v", err))
	}
	defer src.Close()

	blocks, err := drain(src)
	if err != nil {
		// A fatal read error before processing: no partial commit.
		return s.fail(ctx, id, fmt.Sprintf("reading export: %v", err))
	}

	if err := s.tracker.SetTotals(ctx, id, len(blocks)); err != nil {
		return s.fail(ctx, id, fmt.Sprintf("recording totals: %v", err))
	}

	s.writeAudit(ctx, id, blocks)

	cache := make(map[cacheKey]entity.Ref)
	sinceCheckpoint := 0

	for i, b := range blocks {
		skipped, err := s.importBlock(ctx, id, b, cache)

		switch {
		case err != nil:
			// Partial-failure isolation: one bad voucher never
			// aborts the job.
			s.appendError(ctx, id, fmt.Sprintf("block %d (voucher %s): %v", i+1, b.VoucherNo, err))
		case skipped:
			s.appendError(ctx, id, fmt.Sprintf("duplicate voucher %s (%s) skipped", b.VoucherNo, b.DateString()))
		}

		sinceCheckpoint++

		if sinceCheckpoint >= s.cfg.BatchSize {
			if err := s.tracker.Advance(ctx, id, sinceCheckpoint); err != nil {
				return s.fail(ctx, id, fmt.Sprintf("checkpointing progress: %v", err))
			}

			sinceCheckpoint = 0
		}
	}

	if sinceCheckpoint > 0 {
		if err := s.tracker.Advance(ctx, id, sinceCheckpoint); err != nil {
			return s.fail(ctx, id, fmt.Sprintf("checkpointing progress: %v", err))
		}
	}

	if err := s.tracker.Complete(ctx, id); err != nil {
		return fmt.Errorf("completing upload: %w", err)
	}

	return nil
}

type cacheKey struct {
	kind entity.Kind
	key  string
}

// importBlock walks one block through its states: fingerprint check, then
// either a duplicate skip or a single atomic persist of the voucher and
// its dependent rows.
func (s *Service) importBlock(ctx context.Context, uploadID uuid.UUID, b *daybook.Block, cache map[cacheKey]entity.Ref) (skipped bool, err error) {
	fp := Fingerprint(b.VoucherNo, b.DateString())

	exists, err := s.vouchers.ExistsFingerprint(ctx, fp)
	if err != nil {
		return false, fmt.Errorf("fingerprint check: %w", err)
	}

	if exists {
		return true, nil
	}

	counts := repeatCounts(b)
	results := make([]classify.Result, len(b.Lines))

	for i, line := range b.Lines {
		results[i] = classify.Classify(line.Description, classify.Options{
			Strict:       s.cfg.Strict,
			RepeatCounts: counts,
		})
	}

	uniq := Uniquify(b, results)

	rawJSON, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("encoding block: %w", err)
	}

	uniqJSON, err := json.Marshal(uniq)
	if err != nil {
		return false, fmt.Errorf("encoding uniquified block: %w", err)
	}

	tx, err := s.vouchers.BeginBlock(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning block: %w", err)
	}
	defer tx.Rollback()

	// Track what this block resolves so the job cache only learns refs
	// that actually committed.
	var resolved []entity.Ref

	resolve := func(kind entity.Kind, name string) (entity.Ref, error) {
		k := cacheKey{kind: kind, key: entity.NormalizeKey(name)}

		if ref, ok := cache[k]; ok {
			return ref, nil
		}

		ref, err := s.resolver.Resolve(ctx, tx.Querier(), kind, name, uploadID)
		if err != nil {
			return entity.Ref{}, err
		}

		resolved = append(resolved, ref)

		return ref, nil
	}

	v := &voucher.Voucher{
		Number:            b.VoucherNo,
		Amount:            b.Amount(),
		Currency:          voucher.DefaultCurrency,
		UploadID:          uploadID,
		RawPayload:        rawJSON,
		UniquifiedPayload: uniqJSON,
		Fingerprint:       fp,
	}

	if !b.Date.IsZero() {
		d := b.Date
		v.Date = &d
	}

	if uniq.Party != "" {
		ref, err := resolve(entity.KindCompany, uniq.Party)
		if err != nil {
			return false, fmt.Errorf("resolving party: %w", err)
		}

		v.CompanyID = &ref.ID
	}

	if err := tx.InsertVoucher(ctx, v); err != nil {
		return false, err
	}

	for i, line := range uniq.Lines {
		amount := int64(0)
		if line.Amount != nil {
			amount = *line.Amount
		}

		switch results[i].Category {
		case classify.CategoryAccount:
			item := &voucher.Item{
				VoucherID:   v.ID,
				Description: line.Description,
				Quantity:    1,
				UnitPrice:   amount,
				Amount:      amount,
			}
			if err := tx.InsertItem(ctx, item); err != nil {
				return false, err
			}

		case classify.CategoryStaff:
			ref, err := resolve(entity.KindEmployee, line.Description)
			if err != nil {
				return false, fmt.Errorf("resolving staff %q: %w", line.Description, err)
			}

			p := &voucher.Participant{
				VoucherID:  v.ID,
				EmployeeID: ref.ID,
				Role:       participantRole(line.Marker),
				Confidence: results[i].Confidence,
			}
			if err := tx.InsertParticipant(ctx, p); err != nil {
				return false, err
			}
		}
		// Unclassified lines persist nothing.
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing block: %w", err)
	}

	for _, ref := range resolved {
		cache[cacheKey{kind: ref.Kind, key: ref.Key}] = ref
	}

	return false, nil
}

func participantRole(m daybook.Marker) string {
	if m == daybook.MarkerNone {
		return "participant"
	}

	return string(m)
}

// writeAudit persists the raw parsed block list, before uniquification,
// as a durable JSON document next to the job. Never deleted, including on
// failure; a write failure is recorded but does not stop the import.
func (s *Service) writeAudit(ctx context.Context, id uuid.UUID, blocks []*daybook.Block) {
	if s.cfg.AuditDir == "" {
		return
	}

	if err := os.MkdirAll(s.cfg.AuditDir, 0o755); err != nil {
		s.appendError(ctx, id, fmt.Sprintf("audit dir: %v", err))
		return
	}

	path := filepath.Join(s.cfg.AuditDir, id.String()+".blocks.json")

	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		s.appendError(ctx, id, fmt.Sprintf("audit encode: %v", err))
		return
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.appendError(ctx, id, fmt.Sprintf("audit write: %v", err))
		return
	}

	if err := s.tracker.SetAuditPath(ctx, id, path); err != nil {
		s.appendError(ctx, id, fmt.Sprintf("audit path: %v", err))
	}
}

func (s *Service) appendError(ctx context.Context, id uuid.UUID, msg string) {
	if err := s.tracker.AppendError(ctx, id, msg); err != nil {
		s.logger.Error("appending upload error", "upload_id", id, "error", err)
	}
}

func (s *Service) fail(ctx context.Context, id uuid.UUID, msg string) error {
	if err := s.tracker.Fail(ctx, id, msg); err != nil {
		s.logger.Error("failing upload", "upload_id", id, "error", err)
	}

	return fmt.Errorf("import failed: %s", msg)
}

func drain(src BlockSource) ([]*daybook.Block, error) {
	var blocks []*daybook.Block

	for {
		b, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return blocks, nil
			}

			return nil, err
		}

		blocks = append(blocks, b)
	}
}
