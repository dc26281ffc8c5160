package entity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taberna-labs/daybook/internal/entity"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "Acme Traders", "acmetraders"},
		{"Punctuation", "Acme  Traders Pvt. Ltd", "acmetraderspvtltd"},
		{"Diacritics", "ACMÉ TRADERS PVT LTD", "acmetraderspvtltd"},
		{"ParenLocation", "Rahul Sharma (UK)", "rahulsharmauk"},
		{"Digits", "Shop 24", "shop24"},
		{"OnlyPunctuation", "~~~", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.NormalizeKey(tt.in))
		})
	}
}


func TestResolver_Resolve_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := entity.NewMockStore(ctrl)
	store.EXPECT().
		Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
		Return(entity.Ref{ID: 7, Kind: entity.KindCompany, Name: "Acme Traders", Key: "acmetraders"}, nil)

	ref, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "Acme Traders", uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(7), ref.ID)
}

func TestResolver_Resolve_Creates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdBy := uuid.New()

	store := entity.NewMockStore(ctrl)
	gomock.InOrder(
		store.EXPECT().
			Find(gomock.Any(), gomock.Any(), entity.KindEmployee, "rahulsharmauk").
			Return(entity.Ref{}, entity.ErrNotFound),
		store.EXPECT().
			Insert(gomock.Any(), gomock.Any(), entity.KindEmployee, "Rahul Sharma (UK)", "rahulsharmauk", createdBy).
			Return(entity.Ref{ID: 3, Kind: entity.KindEmployee, Name: "Rahul Sharma (UK)", Key: "rahulsharmauk"}, nil),
	)

	ref, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindEmployee, "Rahul Sharma (UK)", createdBy)

	require.NoError(t, err)
	assert.Equal(t, int64(3), ref.ID)
}

func TestResolver_Resolve_LostRaceRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := entity.NewMockStore(ctrl)
	gomock.InOrder(
		// First pass: not found, then the insert loses to a concurrent
		// writer. The conflict comes back as ErrDuplicateKey, not a
		// raised constraint error, so the enclosing block transaction
		// stays usable for the re-lookup.
		store.EXPECT().
			Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
			Return(entity.Ref{}, entity.ErrNotFound),
		store.EXPECT().
			Insert(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", "acmetraders", gomock.Any()).
			Return(entity.Ref{}, entity.ErrDuplicateKey),
		// Second pass: the winner's row is visible now.
		store.EXPECT().
			Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
			Return(entity.Ref{ID: 9, Kind: entity.KindCompany, Key: "acmetraders"}, nil),
	)

	ref, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "Acme Traders", uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(9), ref.ID)
}

func TestResolver_Resolve_RawConstraintErrorAlsoRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A store running outside a transaction may still surface the raw
	// 23505; the resolver treats it the same as ErrDuplicateKey.
	raw := &pgconn.PgError{Code: "23505", ConstraintName: "companies_normalized_key_key"}

	store := entity.NewMockStore(ctrl)
	gomock.InOrder(
		store.EXPECT().
			Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
			Return(entity.Ref{}, entity.ErrNotFound),
		store.EXPECT().
			Insert(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", "acmetraders", gomock.Any()).
			Return(entity.Ref{}, raw),
		store.EXPECT().
			Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
			Return(entity.Ref{ID: 9, Kind: entity.KindCompany, Key: "acmetraders"}, nil),
	)

	ref, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "Acme Traders", uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(9), ref.ID)
}

func TestResolver_Resolve_RetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := entity.NewMockStore(ctrl)
	store.EXPECT().
		Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
		Return(entity.Ref{}, entity.ErrNotFound).
		Times(3)
	store.EXPECT().
		Insert(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", "acmetraders", gomock.Any()).
		Return(entity.Ref{}, entity.ErrDuplicateKey).
		Times(3)

	_, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "Acme Traders", uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries exhausted")
}

func TestResolver_Resolve_NonConstraintInsertErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := entity.NewMockStore(ctrl)
	store.EXPECT().
		Find(gomock.Any(), gomock.Any(), entity.KindCompany, "acmetraders").
		Return(entity.Ref{}, entity.ErrNotFound)
	store.EXPECT().
		Insert(gomock.Any(), gomock.Any(), entity.KindCompany, "Acme Traders", "acmetraders", gomock.Any()).
		Return(entity.Ref{}, errors.New("connection reset"))

	_, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "Acme Traders", uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestResolver_Resolve_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := entity.NewMockStore(ctrl)

	_, err := entity.NewResolver(store).
		Resolve(context.Background(), nil, entity.KindCompany, "  -- ", uuid.New())

	require.ErrorIs(t, err, entity.ErrEmptyName)
}
