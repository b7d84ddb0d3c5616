package category

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/billboard"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
)

// Service defines category business logic.
type Service interface {
	Create(ctx context.Context, userID, storeID string, req CategoryRequest) (*Category, error)
	Get(ctx context.Context, storeID, categoryID string) (*Category, error)
	List(ctx context.Context, storeID string) ([]*Category, error)
	Update(ctx context.Context, userID, storeID, categoryID string, req CategoryRequest) (*Category, error)
	Delete(ctx context.Context, userID, storeID, categoryID string) (*Category, error)
}

// BillboardFinder looks up a billboard within a store.
type BillboardFinder interface {
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*billboard.Billboard, error)
}

type service struct {
	repo       Repository
	billboards BillboardFinder
	stores     store.Guard
}

// NewService creates a new category service.
func NewService(repo Repository, billboards BillboardFinder, stores store.Guard) Service {
	return &service{repo: repo, billboards: billboards, stores: stores}
}

// prepare validates req and resolves its billboard inside the owned store.
func (s *service) prepare(ctx context.Context, userID, storeID string, req *CategoryRequest) (*store.Store, *billboard.Billboard, error) {
	if userID == "" {
		return nil, nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, nil, err
	}
	bid, err := uuid.Parse(req.BillboardID)
	if err != nil {
		return nil, nil, apperr.Validationf("billboardId is invalid")
	}
	b, err := s.billboards.GetByID(ctx, st.ID, bid)
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, nil, apperr.Validationf("billboardId does not belong to this store")
	}
	if err != nil {
		return nil, nil, err
	}
	return st, b, nil
}

func (s *service) Create(ctx context.Context, userID, storeID string, req CategoryRequest) (*Category, error) {
	st, b, err := s.prepare(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	c := &Category{
		ID:             uuid.New(),
		StoreID:        st.ID,
		BillboardID:    b.ID,
		BillboardLabel: b.Label,
		Name:           req.Name,
		PageType:       req.PageType,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, storeID, categoryID string) (*Category, error) {
	id, err := database.ParseID(categoryID, "category")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, st.ID, id)
}

func (s *service) List(ctx context.Context, storeID string) ([]*Category, error) {
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

func (s *service) Update(ctx context.Context, userID, storeID, categoryID string, req CategoryRequest) (*Category, error) {
	id, err := database.ParseID(categoryID, "category")
	if err != nil {
		return nil, err
	}
	st, b, err := s.prepare(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	c := &Category{
		ID:             id,
		StoreID:        st.ID,
		BillboardID:    b.ID,
		BillboardLabel: b.Label,
		Name:           req.Name,
		PageType:       req.PageType,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, userID, storeID, categoryID string) (*Category, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	id, err := database.ParseID(categoryID, "category")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, st.ID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, st.ID, id); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, apperr.Wrap(apperr.KindConflict,
				"make sure you remove all products in this category first", err)
		}
		return nil, err
	}
	return c, nil
}
