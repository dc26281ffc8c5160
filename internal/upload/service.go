package upload

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=upload
type Repository interface {
	Create(ctx context.Context, u *Upload) error
	Get(ctx context.Context, id uuid.UUID) (*Upload, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetTotals(ctx context.Context, id uuid.UUID, total int) error
	Advance(ctx context.Context, id uuid.UUID, delta int) error
	AppendError(ctx context.Context, id uuid.UUID, msg string) error
	SetAuditPath(ctx context.Context, id uuid.UUID, path string) error
	ResetProgress(ctx context.Context, id uuid.UUID) error
}

// Service is a pure status ledger for import runs. It never computes
// business data; the importer writes it, collaborators poll it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, filename, sourcePath string) (*Upload, error) {
	u := &Upload{
		Filename:   filename,
		SourcePath: sourcePath,
		Status:     StatusQueued,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Upload, error) {
	return s.repo.Get(ctx, id)
}

// Begin moves a run into processing and clears counters and errors from
// any previous attempt, so a reprocess reports this run only.
func (s *Service) Begin(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.ResetProgress(ctx, id); err != nil {
		return err
	}

	return s.repo.SetStatus(ctx, id, StatusProcessing)
}

func (s *Service) SetTotals(ctx context.Context, id uuid.UUID, total int) error {
	return s.repo.SetTotals(ctx, id, total)
}

func (s *Service) Advance(ctx context.Context, id uuid.UUID, delta int) error {
	return s.repo.Advance(ctx, id, delta)
}

func (s *Service) AppendError(ctx context.Context, id uuid.UUID, msg string) error {
	return s.repo.AppendError(ctx, id, msg)
}

func (s *Service) SetAuditPath(ctx context.Context, id uuid.UUID, path string) error {
	return s.repo.SetAuditPath(ctx, id, path)
}

func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetStatus(ctx, id, StatusDone)
}

func (s *Service) Fail(ctx context.Context, id uuid.UUID, msg string) error {
	if msg != "" {
		if err := s.repo.AppendError(ctx, id, msg); err != nil {
			return err
		}
	}

	return s.repo.SetStatus(ctx, id, StatusFailed)
}
