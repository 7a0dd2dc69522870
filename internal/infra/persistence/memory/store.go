// Package memory provides an in-process implementation of the repository
// interfaces. It is the default backend when no database is configured and
// the fixture used by the service tests.
package memory

import (
	"sync"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every collection behind one mutex. Individual repository
// operations lock it for their duration, so each operation is atomic on
// its own; cross-operation atomicity comes from the transaction manager.
type Store struct {
	mu  sync.RWMutex
	seq uint64

	businesses    map[uuid.UUID]entity.Business
	deals         map[uuid.UUID]entity.Deal
	coupons       map[uuid.UUID]entity.Coupon
	couponsByCode map[string]uuid.UUID
	notifications map[uuid.UUID]entity.Notification
	users         map[uuid.UUID]entity.User
	usersByEmail  map[string]uuid.UUID

	// order records insertion sequence per id, for newest-first listings.
	order map[uuid.UUID]uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		businesses:    make(map[uuid.UUID]entity.Business),
		deals:         make(map[uuid.UUID]entity.Deal),
		coupons:       make(map[uuid.UUID]entity.Coupon),
		couponsByCode: make(map[string]uuid.UUID),
		notifications: make(map[uuid.UUID]entity.Notification),
		users:         make(map[uuid.UUID]entity.User),
		usersByEmail:  make(map[string]uuid.UUID),
		order:         make(map[uuid.UUID]uint64),
	}
}

// nextSeq must be called with the write lock held.
func (s *Store) nextSeq(id uuid.UUID) {
	s.seq++
	s.order[id] = s.seq
}
