package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/repository"
)

// ResponsibleRepo keeps accounts in process memory.
type ResponsibleRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.Responsible
	byEmail map[string]string
	now     func() time.Time

	// cascades run after an account is removed, outside mu.
	cascades []func(id string)
}

// NewResponsibleRepo returns an empty store.
func NewResponsibleRepo() *ResponsibleRepo {
	return &ResponsibleRepo{
		byID:    make(map[string]domain.Responsible),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

var _ repository.ResponsibleRepository = (*ResponsibleRepo)(nil)

func (r *ResponsibleRepo) Create(ctx context.Context, responsible *domain.Responsible) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[responsible.Email]; taken {
		return repository.ErrDuplicateEmail
	}

	now := r.now()
	responsible.ID = uuid.NewString()
	responsible.CreatedAt = now
	responsible.UpdatedAt = now

	r.byID[responsible.ID] = *responsible
	r.byEmail[responsible.Email] = responsible.ID
	return nil
}

func (r *ResponsibleRepo) Update(ctx context.Context, responsible *domain.Responsible) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[responsible.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if ownerID, taken := r.byEmail[responsible.Email]; taken && ownerID != responsible.ID {
		return repository.ErrDuplicateEmail
	}

	current.Email = responsible.Email
	current.PhoneNumber = responsible.PhoneNumber
	current.Address = responsible.Address
	current.PostalCode = responsible.PostalCode
	current.PictureURL = responsible.PictureURL
	current.IsVerified = responsible.IsVerified
	current.UpdatedAt = r.now()

	for email, id := range r.byEmail {
		if id == current.ID {
			delete(r.byEmail, email)
		}
	}
	r.byEmail[current.Email] = current.ID
	r.byID[current.ID] = current

	responsible.UpdatedAt = current.UpdatedAt
	return nil
}

func (r *ResponsibleRepo) GetByID(ctx context.Context, id string) (*domain.Responsible, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	responsible, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &responsible, nil
}

func (r *ResponsibleRepo) GetByEmail(ctx context.Context, email string) (*domain.Responsible, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	responsible := r.byID[id]
	return &responsible, nil
}

func (r *ResponsibleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	responsible, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, responsible.Email)
	cascades := append([]func(string){}, r.cascades...)
	r.mu.Unlock()

	for _, cascade := range cascades {
		cascade(id)
	}
	return nil
}

// onDelete registers fn to run whenever an account is deleted.
func (r *ResponsibleRepo) onDelete(fn func(id string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cascades = append(r.cascades, fn)
}

func (r *ResponsibleRepo) exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

// contact returns the public contact for an account, if it exists.
func (r *ResponsibleRepo) contact(id string) (*domain.ResponsibleContact, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	responsible, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &domain.ResponsibleContact{
		Name:        responsible.Name,
		PhoneNumber: responsible.PhoneNumber,
		Email:       responsible.Email,
	}, true
}
