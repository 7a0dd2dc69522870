package memory

import (
	"context"
	"sort"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
)

type businessRepository struct {
	store *Store
}

// NewBusinessRepository creates a store-backed BusinessRepository.
func NewBusinessRepository(store *Store) repository.BusinessRepository {
	return &businessRepository{store: store}
}

func (r *businessRepository) CreateBusiness(_ context.Context, business *entity.Business) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.businesses[business.ID] = *business
	r.store.nextSeq(business.ID)

	return nil
}

func (r *businessRepository) FindBusinessByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	business, ok := r.store.businesses[id]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}

	return &business, nil
}

func (r *businessRepository) ListBusinesses(_ context.Context) ([]*entity.Business, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	businesses := make([]*entity.Business, 0, len(r.store.businesses))
	for _, business := range r.store.businesses {
		b := business
		businesses = append(businesses, &b)
	}
	sort.Slice(businesses, func(i, j int) bool {
		return r.store.order[businesses[i].ID] > r.store.order[businesses[j].ID]
	})

	return businesses, nil
}

func (r *businessRepository) UpdateBusiness(_ context.Context, business *entity.Business) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.businesses[business.ID]; !ok {
		return repository.ErrBusinessNotFound
	}
	r.store.businesses[business.ID] = *business

	return nil
}

func (r *businessRepository) DeleteBusiness(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.businesses[id]; !ok {
		return repository.ErrBusinessNotFound
	}
	delete(r.store.businesses, id)
	delete(r.store.order, id)

	return nil
}
