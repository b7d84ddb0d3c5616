package product

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
)

// Service defines product business logic.
type Service interface {
	Create(ctx context.Context, userID, storeID string, req ProductRequest) (*Product, error)
	Get(ctx context.Context, storeID, productID string) (*Product, error)
	List(ctx context.Context, storeID string, f ListFilter) ([]*Product, error)
	Update(ctx context.Context, userID, storeID, productID string, req ProductRequest) (*Product, error)
	// Delete fails with a conflict while an order still references the product.
	Delete(ctx context.Context, userID, storeID, productID string) (*Product, error)
}

type service struct {
	repo   Repository
	stores store.Guard
}

// NewService creates a new product service.
func NewService(repo Repository, stores store.Guard) Service {
	return &service{repo: repo, stores: stores}
}

func (s *service) prepare(ctx context.Context, userID, storeID string, req *ProductRequest) (*store.Store, uuid.UUID, error) {
	if userID == "" {
		return nil, uuid.Nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, uuid.Nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, uuid.Nil, apperr.Validationf("categoryId is invalid")
	}
	ok, err := s.repo.CategoryInStore(ctx, st.ID, categoryID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !ok {
		return nil, uuid.Nil, apperr.Validationf("categoryId does not belong to this store")
	}
	return st, categoryID, nil
}

func (s *service) Create(ctx context.Context, userID, storeID string, req ProductRequest) (*Product, error) {
	st, categoryID, err := s.prepare(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	p := &Product{
		ID:         uuid.New(),
		StoreID:    st.ID,
		CategoryID: categoryID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, storeID, productID string) (*Product, error) {
	id, err := database.ParseID(productID, "product")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, st.ID, id)
}

func (s *service) List(ctx context.Context, storeID string, f ListFilter) ([]*Product, error) {
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, st.ID, f)
}

func (s *service) Update(ctx context.Context, userID, storeID, productID string, req ProductRequest) (*Product, error) {
	id, err := database.ParseID(productID, "product")
	if err != nil {
		return nil, err
	}
	st, categoryID, err := s.prepare(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	p := &Product{
		ID:         id,
		StoreID:    st.ID,
		CategoryID: categoryID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, userID, storeID, productID string) (*Product, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	id, err := database.ParseID(productID, "product")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, st.ID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, st.ID, id); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, apperr.Wrap(apperr.KindConflict, "product is part of existing orders; archive it instead", err)
		}
		return nil, err
	}
	return p, nil
}
