package memory

import (
	"context"
	"sort"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
)

type dealRepository struct {
	store *Store
}

// NewDealRepository creates a store-backed DealRepository.
func NewDealRepository(store *Store) repository.DealRepository {
	return &dealRepository{store: store}
}

func (r *dealRepository) CreateDeal(_ context.Context, deal *entity.Deal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deals[deal.ID] = *deal
	r.store.nextSeq(deal.ID)

	return nil
}

func (r *dealRepository) FindDealByID(_ context.Context, id uuid.UUID) (*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	deal, ok := r.store.deals[id]
	if !ok {
		return nil, repository.ErrDealNotFound
	}

	return &deal, nil
}

func (r *dealRepository) ListDeals(_ context.Context) ([]*entity.Deal, error) {
	return r.list(func(*entity.Deal) bool { return true })
}

func (r *dealRepository) ListDealsByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Deal, error) {
	return r.list(func(d *entity.Deal) bool { return d.BusinessID == businessID })
}

func (r *dealRepository) ListDealsByStatus(_ context.Context, status entity.ApprovalStatus) ([]*entity.Deal, error) {
	return r.list(func(d *entity.Deal) bool { return d.ApprovalStatus == status })
}

func (r *dealRepository) list(keep func(*entity.Deal) bool) ([]*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	deals := make([]*entity.Deal, 0, len(r.store.deals))
	for _, deal := range r.store.deals {
		d := deal
		if keep(&d) {
			deals = append(deals, &d)
		}
	}
	sort.Slice(deals, func(i, j int) bool {
		return r.store.order[deals[i].ID] > r.store.order[deals[j].ID]
	})

	return deals, nil
}

func (r *dealRepository) UpdateDeal(_ context.Context, deal *entity.Deal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.deals[deal.ID]; !ok {
		return repository.ErrDealNotFound
	}
	r.store.deals[deal.ID] = *deal

	return nil
}

// ClaimUnit performs the conditional increment under the store lock, so the
// counter can never be pushed past capacity even without a transaction.
func (r *dealRepository) ClaimUnit(_ context.Context, id uuid.UUID) (*entity.Deal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deal, ok := r.store.deals[id]
	if !ok {
		return nil, repository.ErrDealNotFound
	}
	if deal.ClaimedQuantity >= deal.AvailableQuantity {
		return nil, repository.ErrNoStock
	}

	deal.ClaimedQuantity++
	r.store.deals[id] = deal

	return &deal, nil
}

func (r *dealRepository) DeleteDeal(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.deals[id]; !ok {
		return repository.ErrDealNotFound
	}
	delete(r.store.deals, id)
	delete(r.store.order, id)

	return nil
}
