package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/repository"
)

// PetRepo keeps listings in process memory. Owner checks and writes happen
// under the same lock.
type PetRepo struct {
	mu     sync.RWMutex
	byID   map[string]domain.Pet
	owners *ResponsibleRepo
	now    func() time.Time
}

// NewPetRepo returns an empty store. owners supplies contact details for
// GetByID and may be nil; deleting an account there removes its pets here.
func NewPetRepo(owners *ResponsibleRepo) *PetRepo {
	r := &PetRepo{
		byID:   make(map[string]domain.Pet),
		owners: owners,
		now:    time.Now,
	}
	if owners != nil {
		owners.onDelete(r.deleteOwnedBy)
	}
	return r
}

var _ repository.PetRepository = (*PetRepo)(nil)

// Create stores pet. With an owners store attached the responsible must exist.
func (r *PetRepo) Create(ctx context.Context, pet *domain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owners != nil && !r.owners.exists(pet.ResponsibleID) {
		return repository.ErrNotFound
	}

	now := r.now()
	pet.ID = uuid.NewString()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if pet.PicturesURL == nil {
		pet.PicturesURL = []string{}
	}

	r.byID[pet.ID] = clonePet(*pet)
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (*domain.PetDetail, error) {
	r.mu.RLock()
	pet, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}

	detail := &domain.PetDetail{Pet: clonePet(pet)}
	if r.owners != nil {
		if contact, ok := r.owners.contact(pet.ResponsibleID); ok {
			detail.Responsible = contact
		}
	}
	return detail, nil
}

func (r *PetRepo) List(ctx context.Context, filter repository.PetFilter) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Pet, 0, len(r.byID))
	for _, pet := range r.byID {
		if filter.ResponsibleID != nil && pet.ResponsibleID != *filter.ResponsibleID {
			continue
		}
		out = append(out, clonePet(pet))
	}

	// newest first, id as tie-breaker
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PetRepo) UpdateOwned(ctx context.Context, id string, check repository.OwnerCheck, patch domain.PetPatch) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if err := runCheck(check, pet.ResponsibleID); err != nil {
		return nil, err
	}

	patch.Apply(&pet)
	pet.UpdatedAt = r.now()
	r.byID[id] = pet

	updated := clonePet(pet)
	return &updated, nil
}

func (r *PetRepo) DeleteOwned(ctx context.Context, id string, check repository.OwnerCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	if err := runCheck(check, pet.ResponsibleID); err != nil {
		return err
	}
	delete(r.byID, id)
	return nil
}

func (r *PetRepo) deleteOwnedBy(responsibleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, pet := range r.byID {
		if pet.ResponsibleID == responsibleID {
			delete(r.byID, id)
		}
	}
}

func runCheck(check repository.OwnerCheck, ownerID string) error {
	if check == nil {
		return errors.New("owner check required")
	}
	return check(ownerID)
}

func clonePet(pet domain.Pet) domain.Pet {
	pet.PicturesURL = append([]string{}, pet.PicturesURL...)
	return pet
}
