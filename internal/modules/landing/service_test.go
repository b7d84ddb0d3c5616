package landing

import (
	"context"
	"sync"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu       sync.Mutex
	landings map[uuid.UUID]*Landing
}

func newMemRepo() *memRepo { return &memRepo{landings: map[uuid.UUID]*Landing{}} }

func (m *memRepo) Create(_ context.Context, l *Landing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.landings[l.StoreID]; ok {
		return apperr.Conflict("landing already exists")
	}
	cp := *l
	m.landings[l.StoreID] = &cp
	return nil
}

func (m *memRepo) GetByStore(_ context.Context, storeID uuid.UUID) (*Landing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.landings[storeID]
	if !ok {
		return nil, apperr.NotFound("landing")
	}
	cp := *l
	return &cp, nil
}

func (m *memRepo) Update(_ context.Context, l *Landing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.landings[l.StoreID]
	if !ok {
		return apperr.NotFound("landing")
	}
	l.ID, l.CreatedAt = cur.ID, cur.CreatedAt
	cp := *l
	m.landings[l.StoreID] = &cp
	return nil
}

func (m *memRepo) SeedStore(ctx context.Context, _ sqlx.ExecerContext, storeID uuid.UUID) error {
	return m.Create(ctx, Default(storeID))
}

func TestServiceCreateAndGet(t *testing.T) {
	guard, st := testutil.NewGuard()
	svc := NewService(newMemRepo(), guard)
	ctx := context.Background()

	created, err := svc.Create(ctx, testutil.Owner, st.ID.String())
	require.NoError(t, err)
	assert.Equal(t, PlaceholderTitle, created.MainTitle)

	got, err := svc.Get(ctx, st.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Create(ctx, testutil.Owner, st.ID.String())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestServiceUpdate(t *testing.T) {
	guard, st := testutil.NewGuard()
	repo := newMemRepo()
	require.NoError(t, repo.SeedStore(context.Background(), nil, st.ID))
	svc := NewService(repo, guard)

	req := UpdateRequest{
		DecodeTitle: "  Drop 01",
		MainTitle:   "Winter  ",
		SecondTitle: "Out\tnow\n",
	}
	got, err := svc.Update(context.Background(), testutil.Owner, st.ID.String(), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)

	stored, err := svc.Get(context.Background(), st.ID.String())
	require.NoError(t, err)
	assert.Equal(t, req.DecodeTitle, stored.DecodeTitle)
	assert.Equal(t, req.MainTitle, stored.MainTitle)
	assert.Equal(t, req.SecondTitle, stored.SecondTitle)
}

func TestServiceUpdateWithoutLandingIsNotFound(t *testing.T) {
	guard, st := testutil.NewGuard()
	svc := NewService(newMemRepo(), guard)

	_, err := svc.Update(context.Background(), testutil.Owner, st.ID.String(), UpdateRequest{
		DecodeTitle: "a", MainTitle: "b", SecondTitle: "c",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestServiceUpdateChecks(t *testing.T) {
	guard, st := testutil.NewGuard()
	svc := NewService(newMemRepo(), guard)
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		req    UpdateRequest
		kind   apperr.Kind
		msg    string
	}{
		{"anonymous", "", UpdateRequest{}, apperr.KindUnauthenticated, "Unauthenticated"},
		{"missing decode", testutil.Owner, UpdateRequest{MainTitle: "b", SecondTitle: "c"}, apperr.KindValidation, "decodeTitle is required"},
		{"blank main", testutil.Owner, UpdateRequest{DecodeTitle: "a", MainTitle: "  ", SecondTitle: "c"}, apperr.KindValidation, "mainTitle is required"},
		{"missing second", testutil.Owner, UpdateRequest{DecodeTitle: "a", MainTitle: "b"}, apperr.KindValidation, "secondTitle is required"},
		{"not owner", "user_other", UpdateRequest{DecodeTitle: "a", MainTitle: "b", SecondTitle: "c"}, apperr.KindForbidden, "Unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tt.userID, st.ID.String(), tt.req)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
			assert.Equal(t, tt.msg, apperr.Message(err))
		})
	}
}
